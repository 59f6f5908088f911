package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/blockmap/internal/app"
	"github.com/tildaslashalef/blockmap/internal/report"
	"github.com/tildaslashalef/blockmap/internal/utils"
)

// AuditCommand returns the audit command for LLM review of the grouping
func AuditCommand() *cli.Command {
	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Ask the configured LLM to review the extraction groups",
		Action: func(c *cli.Context) error {
			return runAudit(c)
		},
	}
}

func runAudit(c *cli.Context) error {
	application, err := app.FromContext(c)
	if err != nil {
		return fmt.Errorf("failed to get app from context: %w", err)
	}

	if application.Audit == nil {
		return fmt.Errorf("audit is unavailable: no LLM client configured (set BLOCKMAP_CLAUDE_API_KEY)")
	}

	path := application.Config.Scan.InputPath
	if override := c.String("file"); override != "" {
		path = override
	}

	rep, err := application.Report.Build(path, report.DefaultGroups())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	utils.PrintInfo(fmt.Sprintf("Auditing %s with %s", path, application.Config.Claude.Model))

	result, err := application.Audit.Run(c.Context, rep)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if !result.Parsed {
		utils.PrintWarning("The model did not return a structured verdict; raw response follows")
		fmt.Println(result.Raw)
		return nil
	}

	utils.PrintHeading(fmt.Sprintf("Audit %s (session %s)", result.ID, result.Session))

	for _, g := range result.Verdict.Groups {
		fmt.Printf("  %s: cohesion %s, sizing %s",
			g.Name, colorScore(g.Cohesion), colorScore(g.Sizing))
		if g.Notes != "" {
			fmt.Printf(" - %s", g.Notes)
		}
		fmt.Println()
	}

	fmt.Printf("\nOverall: %s\n", colorScore(result.Verdict.Overall))

	if len(result.Verdict.Recommendations) > 0 {
		fmt.Println()
		utils.PrintHeading("Recommendations")
		utils.PrintList(result.Verdict.Recommendations, "-")
	}

	return nil
}

// colorScore formats a 1-10 score with a severity color
func colorScore(score int) string {
	switch {
	case score >= 8:
		return color.GreenString("%d/10", score)
	case score >= 5:
		return color.YellowString("%d/10", score)
	default:
		return color.RedString("%d/10", score)
	}
}
