// Package puzzleio reads and writes the line-oriented textual puzzle
// format: nine lines, each nine characters from '0'-'9', with
// '0' meaning empty. Blank or malformed lines are skipped rather than
// rejected outright; the failure mode is having too few valid lines left
// over, not a single bad line.
package puzzleio

import (
	"fmt"
	"strings"

	"github.com/refap3/sudokututor/pkg/constants"
)

// Parse reads text as nine rows of nine digits and returns the row-major
// 81-cell grid. Lines are whitespace-trimmed; a trimmed line that is not
// exactly nine digit characters is skipped rather than rejected. Parsing
// fails once fewer than nine valid lines remain.
func Parse(text string) ([constants.TotalCells]int, error) {
	var grid [constants.TotalCells]int
	var rows [][constants.GridSize]int

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		row, ok := parseRow(line)
		if !ok {
			continue
		}
		rows = append(rows, row)
		if len(rows) == constants.GridSize {
			break
		}
	}

	if len(rows) != constants.GridSize {
		return grid, fmt.Errorf("puzzleio: expected %d valid rows, found %d", constants.GridSize, len(rows))
	}

	for r, row := range rows {
		for c, d := range row {
			grid[r*constants.GridSize+c] = d
		}
	}
	return grid, nil
}

func parseRow(line string) ([constants.GridSize]int, bool) {
	var row [constants.GridSize]int
	if len(line) != constants.GridSize {
		return row, false
	}
	for i := 0; i < constants.GridSize; i++ {
		ch := line[i]
		if ch < '0' || ch > '9' {
			return row, false
		}
		row[i] = int(ch - '0')
	}
	return row, true
}

// Format renders an 81-cell grid as nine lines of nine digits, '0' for
// empty cells, separated by '\n' with no trailing newline. Parsing the
// result reproduces grid exactly.
func Format(grid [constants.TotalCells]int) string {
	var b strings.Builder
	for r := 0; r < constants.GridSize; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < constants.GridSize; c++ {
			b.WriteByte(byte('0' + grid[r*constants.GridSize+c]))
		}
	}
	return b.String()
}
