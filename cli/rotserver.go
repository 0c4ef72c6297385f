package cli

import (
	ctx "context"
	"github.com/nathanielknight/rot/config"
	"github.com/urfave/cli/v3"
	"io"
)

const DefaultPort = 8080

type ServerConfig struct {
	Port  int
	Shift int
}

func SetupServerCommand(buildInfo BuildInfo, stderr io.Writer, stdout io.Writer, runBlock func(c ctx.Context, serverConfig *ServerConfig) error) cli.Command {
	serverConfig := &ServerConfig{
		Port:  DefaultPort,
		Shift: config.DefaultShift,
	}

	return cli.Command{
		Name: "rotserver",
		Authors: []any{
			"Nathaniel Knight",
		},
		UsageText:   "rotserver [options]",
		Description: "Serve rot over HTTP: GET rotates the request path, POST rotates the request body. Use ?shift=n to override the shift and ?decode=true to undo it.",
		Version:     buildInfo.ToString(),
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&PortFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Usage:       "port to listen on",
				Value:       serverConfig.Port,
				Destination: &serverConfig.Port,
			},
			&ShiftFlag{
				Name:        "shift",
				Aliases:     []string{"s"},
				Usage:       "shift applied when a request doesn't give one, may be negative",
				Value:       serverConfig.Shift,
				Destination: &serverConfig.Shift,
			},
		},
		Action: func(c ctx.Context, _ *cli.Command) error {
			return runBlock(c, serverConfig)
		},
	}
}
