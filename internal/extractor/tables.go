package extractor

import (
	"math"
	"sort"
)

// columnBand is a vertical band of word origins that line up across rows.
type columnBand struct {
	x     float64 // left edge (mean of member origins)
	count int
	minY  float64
	maxY  float64
}

// buildTables reconstructs a cell grid from positioned words. The statement
// family this tool targets draws ruled tables, which after text extraction
// show up as words whose X origins repeat down the page. Columns are found
// by clustering those origins; a page only counts as tabular when at least
// six sufficiently tall bands emerge, otherwise nil is returned and the
// caller falls back to plain-text parsing.
func buildTables(words []word, geo TableGeometry) [][][]string {
	if len(words) == 0 {
		return nil
	}

	bands := detectColumns(words, geo)
	if len(bands) < 6 {
		return nil
	}

	rows := groupRows(words, geo.SnapTolerance)
	var table [][]string
	for _, row := range rows {
		if len(row) < geo.MinWordsHorizontal {
			continue
		}
		cells := make([]string, len(bands))
		for _, w := range row {
			idx := nearestBand(bands, w.x)
			if cells[idx] == "" {
				cells[idx] = w.s
			} else {
				cells[idx] += " " + w.s
			}
		}
		table = append(table, cells)
	}

	if len(table) < 2 {
		return nil
	}
	return [][][]string{table}
}

// detectColumns clusters word X origins into column bands and keeps the ones
// that look like real table columns: enough member words and enough vertical
// span.
func detectColumns(words []word, geo TableGeometry) []columnBand {
	sorted := make([]word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].x < sorted[b].x })

	var bands []columnBand
	for _, w := range sorted {
		if n := len(bands); n > 0 && w.x-bands[n-1].x <= geo.JoinTolerance {
			b := &bands[n-1]
			b.x = (b.x*float64(b.count) + w.x) / float64(b.count+1)
			b.count++
			b.minY = math.Min(b.minY, w.y)
			b.maxY = math.Max(b.maxY, w.y)
			continue
		}
		bands = append(bands, columnBand{x: w.x, count: 1, minY: w.y, maxY: w.y})
	}

	minWords := geo.MinWordsVertical
	if minWords < 2 {
		minWords = 2
	}
	var kept []columnBand
	for _, b := range bands {
		if b.count < minWords {
			continue
		}
		if b.maxY-b.minY < geo.EdgeMinLength {
			continue
		}
		kept = append(kept, b)
	}

	// Merge bands that sit within the intersection tolerance of each other;
	// ruled lines and cell text can produce twin origins a few points apart.
	var merged []columnBand
	for _, b := range kept {
		if n := len(merged); n > 0 && b.x-merged[n-1].x <= geo.IntersectionTolerance {
			m := &merged[n-1]
			m.x = (m.x*float64(m.count) + b.x*float64(b.count)) / float64(m.count+b.count)
			m.count += b.count
			m.minY = math.Min(m.minY, b.minY)
			m.maxY = math.Max(m.maxY, b.maxY)
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// nearestBand returns the index of the column band whose left edge is
// closest to x without being to its right, falling back to plain nearest.
func nearestBand(bands []columnBand, x float64) int {
	best := 0
	for i := range bands {
		if bands[i].x <= x+1 {
			best = i
		}
	}
	// A word left of every band still lands in the first column.
	return best
}
