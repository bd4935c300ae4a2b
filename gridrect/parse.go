package gridrect

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// maxLine bounds a single text row; wide grids need more than bufio's 64 KiB default.
const maxLine = 64 << 20

// Parse reads a text grid, one row per line. Whitespace is ignored, so both
// "01100" and "0 1 1 0 0" work; blank lines are skipped. The runes '.', '0'
// and '_' are empty cells; any other rune is occupied.
// Returns ErrNonRectangular if rows differ in length.
func Parse(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]bool
	line := 0
	for sc.Scan() {
		line++
		row := make([]bool, 0, len(sc.Text()))
		for _, c := range sc.Text() {
			if unicode.IsSpace(c) {
				continue
			}
			row = append(row, !isEmptyRune(c))
		}
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridrect: read grid: %w", err)
	}

	return FromRows(rows)
}

func isEmptyRune(c rune) bool {
	return c == '.' || c == '0' || c == '_'
}

// String renders d with '#' for occupied and '.' for empty cells, one row per
// line. The output round-trips through Parse.
func (d *Dense) String() string {
	var b strings.Builder
	b.Grow((d.width + 1) * d.height)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.cells[d.index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
