package execcontext

import (
	"errors"
	"fmt"
	"github.com/nathanielknight/rot/config"
	"github.com/nathanielknight/rot/rotator"
	"io"
	"os"
	"unicode/utf8"
)

const stdinSource = "stdin"

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// InputError is returned when the text to rotate couldn't be read, Source is
// either "stdin" or the path of the file
type InputError struct {
	Source string
	Err    error
	stdin  bool
}

func (e *InputError) Error() string {
	if e.stdin {
		return fmt.Sprintf("error reading from stdin: %s", e.Err)
	}
	return fmt.Sprintf("error reading from '%s': %s", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

type Context struct {
	Rotator rotator.Rotator
	Input   string
	Out     io.Writer
}

func New(conf *config.Config, in io.Reader, stdout io.Writer) (*Context, error) {
	var err error

	context := Context{
		Rotator: rotator.New(conf.Shift),
		Out:     stdout,
	}

	context.Input, err = readInput(conf, in)
	if err != nil {
		return nil, err
	}

	return &context, nil
}

// Output is the rotated input, nothing is appended to it
func (context *Context) Output() string {
	return context.Rotator.RotString(context.Input)
}

func readInput(conf *config.Config, in io.Reader) (string, error) {
	if !conf.ReadsStdin() {
		return readFile(conf.Filename)
	}

	text, err := readText(in)
	if err != nil {
		return "", &InputError{Source: stdinSource, Err: err, stdin: true}
	}
	return text, nil
}

func readFile(filename string) (text string, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", &InputError{Source: filename, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &InputError{Source: filename, Err: closeErr}
		}
	}()

	text, err = readText(file)
	if err != nil {
		return "", &InputError{Source: filename, Err: err}
	}
	return text, nil
}

func readText(in io.Reader) (string, error) {
	bytes, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(bytes) {
		return "", ErrInvalidEncoding
	}

	return string(bytes), nil
}
