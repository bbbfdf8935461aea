package extractor

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// word is a positioned text fragment from the PDF content stream.
type word struct {
	x, y float64
	s    string
}

// pdfDocument adapts a ledongthuc/pdf reader to the Document interface.
type pdfDocument struct {
	pages []Page
}

// NewDocument wraps an open PDF reader. Pages that cannot be decoded are
// kept as empty pages so page numbering stays aligned with the source.
func NewDocument(r *pdf.Reader) Document {
	doc := &pdfDocument{}
	for i := 1; i <= r.NumPage(); i++ {
		doc.pages = append(doc.pages, loadPage(r, i))
	}
	return doc
}

func (d *pdfDocument) Pages() []Page {
	return d.pages
}

// pdfPage holds the positioned words of one page.
type pdfPage struct {
	words []word
}

// loadPage pulls the content stream of one page. The library can panic on
// malformed xref tables, so the whole load is wrapped in a recover.
func loadPage(r *pdf.Reader, num int) (p *pdfPage) {
	p = &pdfPage{}
	defer func() {
		if rec := recover(); rec != nil {
			p.words = nil
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return p
	}
	for _, t := range page.Content().Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		p.words = append(p.words, word{x: t.X, y: t.Y, s: t.S})
	}
	return p
}

// ExtractText reconstructs the page text row by row: words grouped by Y
// (PDF Y grows bottom-to-top, so rows are emitted in descending Y order),
// then sorted by X within each row. A large horizontal gap becomes an extra
// space so column boundaries stay visible in the text.
func (p *pdfPage) ExtractText() string {
	rows := groupRows(p.words, 1)

	var lines []string
	for _, row := range rows {
		var b strings.Builder
		var prevX float64
		for j, w := range row {
			if j > 0 {
				if w.x-prevX > 15 {
					b.WriteString("  ")
				} else {
					b.WriteString(" ")
				}
			}
			b.WriteString(w.s)
			prevX = w.x
		}
		line := strings.TrimSpace(b.String())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// ExtractTables runs geometric table reconstruction over the page words.
func (p *pdfPage) ExtractTables(geo TableGeometry) [][][]string {
	return buildTables(p.words, geo)
}

// groupRows buckets words into visual rows by Y coordinate, top of page
// first, left to right within a row.
func groupRows(words []word, tolerance float64) [][]word {
	if tolerance < 1 {
		tolerance = 1
	}
	rowMap := make(map[int][]word)
	for _, w := range words {
		key := int(math.Round(w.y / tolerance))
		rowMap[key] = append(rowMap[key], w)
	}

	keys := make([]int, 0, len(rowMap))
	for k := range rowMap {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	rows := make([][]word, 0, len(keys))
	for _, k := range keys {
		row := rowMap[k]
		sort.Slice(row, func(a, b int) bool { return row[a].x < row[b].x })
		rows = append(rows, row)
	}
	return rows
}
