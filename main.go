package main

import (
	"github.com/nathanielknight/rot/cli"
	"os"
)

// set with -ldflags "-X main.version=..." at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildInfo := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	os.Exit(cli.RunCommand(buildInfo, os.Args, os.Stdin, os.Stderr, os.Stdout, cli.ProcessInput))
}
