package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/logging"
	"github.com/urfave/cli/v3"
)

func main() {
	stdout := logging.Setup("music-catalog")

	app := &cli.Command{
		Name:  "musicd",
		Usage: "Music catalog API: users, genres and tracks",
		Commands: []*cli.Command{
			serveCommand(stdout),
			migrateCommand(),
			createSuperuserCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
