package config

import (
	"errors"
	"fmt"
	"strconv"
)

const DefaultShift = 13

var ErrInvalidArguments = errors.New("invalid arguments")

type Config struct {
	Shift    int
	Filename string
}

func New() *Config {
	return &Config{
		Shift:    DefaultShift,
		Filename: "",
	}
}

// ReadsStdin is true when no file was named on the command line.
func (conf *Config) ReadsStdin() bool {
	return len(conf.Filename) == 0
}

// Parse builds a Config from the full process arguments, program name included.
// The accepted forms are a closed set keyed on the argument count:
//
//	rot
//	rot <filename>
//	rot -s|--shift <n>
//	rot -s|--shift <n> <filename>
//
// A single argument is always a filename, so `rot 5` reads a file named "5".
func Parse(args []string) (*Config, error) {
	conf := New()

	if len(args) == 0 {
		return conf, nil
	}

	switch rest := args[1:]; len(rest) {
	case 0:
		return conf, nil
	case 1:
		conf.Filename = rest[0]
		return conf, nil
	case 2, 3:
		shift, err := parseShift(rest[0], rest[1])
		if err != nil {
			return nil, err
		}
		conf.Shift = shift
		if len(rest) == 3 {
			conf.Filename = rest[2]
		}
		return conf, nil
	}

	return nil, ErrInvalidArguments
}

func parseShift(flag string, value string) (int, error) {
	if !isShiftFlag(flag) {
		return 0, ErrInvalidArguments
	}

	shift, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: --shift expects a number: %w", ErrInvalidArguments, err)
	}

	return shift, nil
}

func isShiftFlag(flag string) bool {
	return flag == "--shift" || flag == "-s"
}
