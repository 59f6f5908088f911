// Package commands provides CLI command implementations
package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/blockmap/internal/app"
	"github.com/tildaslashalef/blockmap/internal/loggy"
	"github.com/tildaslashalef/blockmap/internal/report"
)

// ReportCommand returns the report command for mapping grouped block extents
func ReportCommand() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Map grouped definitions to their line extents",
		Action: func(c *cli.Context) error {
			return runReport(c)
		},
	}
}

// runReport builds the extraction report and renders it in the requested
// format. It also backs the application's default action.
func runReport(c *cli.Context) error {
	application, err := app.FromContext(c)
	if err != nil {
		return fmt.Errorf("failed to get app from context: %w", err)
	}

	path := application.Config.Scan.InputPath
	if override := c.String("file"); override != "" {
		path = override
	}

	rep, err := application.Report.Build(path, report.DefaultGroups())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	loggy.Debug("rendering report", "report_id", rep.ID, "format", c.String("format"))

	switch c.String("format") {
	case "json":
		out, err := report.RenderJSON(rep)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "table":
		report.RenderTable(rep)
	default:
		fmt.Print(report.RenderText(rep))
	}

	return nil
}
