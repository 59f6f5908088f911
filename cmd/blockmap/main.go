// Package main is the entry point for the blockmap application
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/blockmap/internal/app"
	"github.com/tildaslashalef/blockmap/internal/commands"
	"github.com/tildaslashalef/blockmap/internal/loggy"
)

// Version information set by build flags
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cliApp := &cli.App{
		Name:    "blockmap",
		Usage:   "Map router block definitions to extraction groups",
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Source file to scan (overrides BLOCKMAP_SCAN_INPUT_PATH)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json or table",
				Value:   "text",
			},
		},
		Before: func(c *cli.Context) error {
			application, err := app.New()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			if c.App.Metadata == nil {
				c.App.Metadata = make(map[string]interface{})
			}
			c.App.Metadata["app"] = application

			return nil
		},
		After: func(c *cli.Context) error {
			if application, err := app.FromContext(c); err == nil {
				if err := application.Shutdown(); err != nil {
					loggy.Error("Failed to shut down cleanly", "error", err)
				}
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.ReportCommand(),
			commands.GroupsCommand(),
			commands.AuditCommand(),
		},
		// Running without a subcommand produces the report
		Action: func(c *cli.Context) error {
			return commands.ReportCommand().Action(c)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
