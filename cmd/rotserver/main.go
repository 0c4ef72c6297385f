package main

import (
	"context"
	"github.com/nathanielknight/rot/cli"
	"github.com/nathanielknight/rot/logger"
	"github.com/nathanielknight/rot/rotserver"
	"os"
	"os/signal"
	"syscall"
)

// set with -ldflags "-X main.version=..." at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	buildInfo := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	log := logger.New(os.Stderr)

	command := cli.SetupServerCommand(buildInfo, os.Stderr, os.Stdout, func(ctx context.Context, serverConfig *cli.ServerConfig) error {
		return serve(ctx, serverConfig, log)
	})

	if err := command.Run(ctx, os.Args); err != nil {
		log.LogError(err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, serverConfig *cli.ServerConfig, log *logger.LeveledLogger) error {
	shutdown, err := rotserver.Rotserver(int64(serverConfig.Port), serverConfig.Shift, os.Stdout)
	if err != nil {
		return err
	}

	log.Success("rotserver listening on :%d with default shift %d", serverConfig.Port, serverConfig.Shift)
	<-ctx.Done()
	log.Info("shutting down")

	return shutdown()
}
