// Package scanner locates named, brace-delimited definitions in line-oriented
// source text and resolves their exact line extents.
package scanner

// Block represents the resolved extent of a single named definition.
// Line indices are 0-based. StartLine includes any comment lines attached
// directly above the declaration, so StartLine <= DeclLine <= EndLine.
type Block struct {
	Name      string `json:"name"`
	StartLine int    `json:"start_line"` // effective start after comment attachment
	DeclLine  int    `json:"decl_line"`  // line containing the opening pattern
	EndLine   int    `json:"end_line"`   // line where brace depth returns to zero
}

// LineCount returns the number of lines the block spans, inclusive of both ends.
func (b Block) LineCount() int {
	return b.EndLine - b.StartLine + 1
}

// FileScan holds the loaded lines of a single input file together with the
// locations of every definition found in it.
type FileScan struct {
	Path     string
	Language string
	Lines    []string
	// Definitions maps definition name to its declaration line index.
	// When a name is declared more than once, the last occurrence wins.
	Definitions map[string]int
}
