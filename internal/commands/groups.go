package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/blockmap/internal/report"
	"github.com/tildaslashalef/blockmap/internal/utils"
)

// GroupsCommand returns the groups command for listing the extraction plan
func GroupsCommand() *cli.Command {
	return &cli.Command{
		Name:    "groups",
		Aliases: []string{"g"},
		Usage:   "List the extraction groups and their members",
		Action: func(c *cli.Context) error {
			utils.PrintHeading("Extraction groups")

			for _, group := range report.DefaultGroups() {
				utils.PrintKeyValue(group.Name, fmt.Sprintf("%d members", len(group.Members)))
				utils.PrintList(group.Members, "-")
			}

			return nil
		},
	}
}
