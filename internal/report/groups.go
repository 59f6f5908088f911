package report

// Group is a named category with an ordered list of member definition names.
// Membership is static configuration; it is never derived from the input.
type Group struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// DefaultGroups returns the built-in grouping of router definitions. Groups
// and members are emitted in exactly this order.
func DefaultGroups() []Group {
	return []Group{
		{
			Name: "analysisRouter",
			Members: []string{
				"mixReport", "structure", "benchmark", "timeline", "dawExport",
				"moodEnergy", "insights", "matrix", "csvExport",
			},
		},
		{
			Name:    "collaborationRouter",
			Members: []string{"collaboration", "comment"},
		},
		{
			Name:    "portfolioRouter",
			Members: []string{"portfolio", "completion", "abCompare", "trackNote"},
		},
		{
			Name:    "playlistRouter",
			Members: []string{"playlist", "reorder"},
		},
		{
			Name:    "subscriptionRouter",
			Members: []string{"subscription", "usage"},
		},
		{
			Name:    "creativeRouter",
			Members: []string{"artwork", "mastering", "sentimentHeatmap"},
		},
	}
}
