package cli

import (
	"bytes"
	ctx "context"
	"github.com/nathanielknight/rot/execcontext"
	"github.com/stretchr/testify/assert"
	"io"
	"strings"
	"testing"
)

var testBuildInfo = BuildInfo{Version: "testing", Commit: "123abc", Date: "2023-12-20"}

const usageBanner = "\nusage:\n  rot [filename] [-s|--shift n]\n"

type RunResults struct {
	stderr   string
	stdout   string
	exitCode int
	context  *execcontext.Context
}

func (results RunResults) assert(t *testing.T, expectedStandardOut string, expectedLog string) {
	assert.Equal(t, expectedStandardOut, results.stdout, "expected stdout")
	assert.Equal(t, expectedLog, results.stderr, "expected logger stderr")
}

// a failed run writes the error and the usage banner to stderr and nothing to stdout
func (results RunResults) assertFailed(t *testing.T, expectedMessage string) {
	assert.Equal(t, 1, results.exitCode, "expected exit code")
	assert.Nil(t, results.context)
	assert.Equal(t, "", results.stdout, "expected no stdout")
	assert.True(t, strings.HasSuffix(results.stderr, usageBanner), "expected usage banner, got %q", results.stderr)
	assert.Contains(t, results.stderr, expectedMessage)
}

// we want to test parsing of arguments, we don't actually want to write any output
func ParseArgs(args []string) RunResults {
	in := strings.NewReader("")
	return runApp(args, in, nil)
}

// we want to control what stdin is sending and actually rotate the input
func RunApp(args []string, in io.Reader) RunResults {
	return runApp(args, in, ProcessInput)
}

func runApp(args []string, in io.Reader, runBlock func(context *execcontext.Context) error) RunResults {
	var resultContext *execcontext.Context
	stderr := new(bytes.Buffer)
	stdout := new(bytes.Buffer)

	processInput := func(context *execcontext.Context) error {
		resultContext = context
		if runBlock != nil {
			return runBlock(context)
		}
		return nil
	}

	exitCode := RunCommand(testBuildInfo, args, in, stderr, stdout, processInput)
	return RunResults{stderr.String(), stdout.String(), exitCode, resultContext}
}

type ServerRunResults struct {
	stderr       string
	stdout       string
	err          error
	serverConfig *ServerConfig
}

// parses rotserver arguments without starting a server
func ParseServerArgs(args []string) ServerRunResults {
	var resultConfig *ServerConfig
	stderr := new(bytes.Buffer)
	stdout := new(bytes.Buffer)

	command := SetupServerCommand(testBuildInfo, stderr, stdout, func(_ ctx.Context, serverConfig *ServerConfig) error {
		resultConfig = serverConfig
		return nil
	})

	err := command.Run(ctx.Background(), args)
	return ServerRunResults{stderr.String(), stdout.String(), err, resultConfig}
}
