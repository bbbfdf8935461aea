// Package extractor is the layout-engine boundary: it turns a statement
// document into, per page, either a grid of table cells or a block of plain
// text. The parsing pipeline only ever sees the Document and Page interfaces.
package extractor

// TableGeometry carries the tolerances for geometric table detection. The
// defaults are tuned for the 6-8 column statement family this tool targets.
type TableGeometry struct {
	// IntersectionTolerance merges column bands whose edges sit closer than
	// this many points.
	IntersectionTolerance float64
	// SnapTolerance groups words into the same visual row when their
	// baselines differ by at most this much.
	SnapTolerance float64
	// JoinTolerance clusters word origins into the same column band.
	JoinTolerance float64
	// EdgeMinLength is the minimum vertical extent a column band must span
	// to count as a real table column.
	EdgeMinLength float64
	// MinWordsVertical is the minimum number of words a column band needs.
	MinWordsVertical int
	// MinWordsHorizontal is the minimum number of words a row needs to be
	// emitted as a table row.
	MinWordsHorizontal int
}

// DefaultTableGeometry returns the tolerances tuned for the known document
// family.
func DefaultTableGeometry() TableGeometry {
	return TableGeometry{
		IntersectionTolerance: 5,
		SnapTolerance:         3,
		JoinTolerance:         3,
		EdgeMinLength:         20,
		MinWordsVertical:      1,
		MinWordsHorizontal:    1,
	}
}

// Page exposes one document page to the parsing pipeline.
type Page interface {
	// ExtractTables returns detected tables as table -> row -> cells.
	// It returns nil when no confident table structure is found; callers
	// are expected to fall back to ExtractText.
	ExtractTables(geo TableGeometry) [][][]string
	// ExtractText returns the page content as plain text, one visual row
	// per line.
	ExtractText() string
}

// Document is an opened, already-unencrypted statement document.
type Document interface {
	Pages() []Page
}
