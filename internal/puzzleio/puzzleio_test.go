package puzzleio

import "testing"

const easyPuzzle = "003020600\n900305001\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300"

func TestParse_Basic(t *testing.T) {
	grid, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grid[0] != 0 || grid[2] != 3 || grid[3] != 0 || grid[4] != 2 {
		t.Errorf("unexpected first row decode: %v", grid[:9])
	}
	if grid[80] != 0 {
		t.Errorf("expected last cell 0, got %d", grid[80])
	}
}

func TestParse_SkipsBlankAndMalformedLines(t *testing.T) {
	text := "\n  \n003020600\n900305001\nnot a row\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300\n\n"
	grid, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grid[2] != 3 {
		t.Errorf("expected blank/malformed lines skipped, got %v", grid[:9])
	}
}

func TestParse_TooFewRows(t *testing.T) {
	_, err := Parse("003020600\n900305001")
	if err == nil {
		t.Fatal("expected error for too few valid rows")
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	grid, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Format(grid)
	roundTripped, err := Parse(out)
	if err != nil {
		t.Fatalf("unexpected error re-parsing formatted grid: %v", err)
	}
	if roundTripped != grid {
		t.Errorf("round-trip mismatch: %v != %v", roundTripped, grid)
	}
	want := "003020600\n900305001\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300"
	if out != want {
		t.Errorf("unexpected format output:\n%s\nwant:\n%s", out, want)
	}
}
