package fixtures

import (
	"testing"

	"github.com/refap3/sudokututor/internal/puzzleio"
)

func TestNamed_AllParse(t *testing.T) {
	for name, puzzle := range Named {
		if _, err := puzzleio.Parse(puzzle); err != nil {
			t.Errorf("fixture %q failed to parse: %v", name, err)
		}
	}
}
