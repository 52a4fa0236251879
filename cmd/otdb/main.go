package main

import (
	"os"

	"github.com/otdb/otdb-terminal/cmd/commands"
	"github.com/otdb/otdb-terminal/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}
