package cli

import (
	ctx "context"
	"github.com/nathanielknight/rot/config"
	"github.com/nathanielknight/rot/execcontext"
	"github.com/nathanielknight/rot/logger"
	"github.com/urfave/cli/v3"
	"io"
)

const UsageText = "rot [filename] [-s|--shift n]"

// printed after the error message on every failure
var usageLines = []string{"", "usage:", "  " + UsageText}

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (buildInfo BuildInfo) ToString() string {
	return buildInfo.Version + " " + buildInfo.Commit + " " + buildInfo.Date
}

// SetupCommand builds the rot command. Flags are not parsed by urfave/cli, the
// raw arguments go to config.Parse which only accepts a fixed set of shapes.
func SetupCommand(buildInfo BuildInfo, in io.Reader, stderr io.Writer, stdout io.Writer, runBlock func(context *execcontext.Context) error) cli.Command {
	var context *execcontext.Context

	return cli.Command{
		Name: "rot",
		Authors: []any{
			"Nathaniel Knight",
		},
		Usage:           "rotate the letters of the input by a fixed shift (ROT13 by default)",
		UsageText:       UsageText,
		Description:     "Pipe text to rot over stdin or give it a file, every ASCII letter is shifted around the alphabet and everything else is passed through.",
		Version:         buildInfo.ToString(),
		Reader:          in,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelp:        true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Before: func(_ ctx.Context, cmd *cli.Command) error {
			args := append([]string{cmd.Name}, cmd.Args().Slice()...)

			conf, err := config.Parse(args)
			if err != nil {
				return err
			}

			context, err = execcontext.New(conf, in, stdout)

			return err
		},
		Action: func(_ ctx.Context, _ *cli.Command) error {
			return runBlock(context)
		},
	}
}

// RunCommand runs rot against the given arguments and returns the process exit status
func RunCommand(buildInfo BuildInfo, args []string, in io.Reader, stderr io.Writer, stdout io.Writer, runBlock func(context *execcontext.Context) error) int {
	var actionErr error

	command := SetupCommand(buildInfo, in, stderr, stdout, func(context *execcontext.Context) error {
		actionErr = runBlock(context)
		return actionErr
	})

	err := command.Run(ctx.Background(), args)
	if err == nil {
		err = actionErr
	}

	if err != nil {
		logger.New(stderr).LogError(err, usageLines...)
		return 1
	}

	return 0
}

// ProcessInput writes the rotated input to the context's output as is, no newline is added
func ProcessInput(context *execcontext.Context) error {
	_, err := io.WriteString(context.Out, context.Output())
	return err
}
