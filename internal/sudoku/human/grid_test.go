package human

import (
	"testing"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/internal/puzzleio"
	"github.com/refap3/sudokututor/internal/sudoku/fixtures"
)

func TestCandidates_Basics(t *testing.T) {
	var c Candidates
	c = c.Set(3).Set(7)
	if !c.Has(3) || !c.Has(7) || c.Has(5) {
		t.Errorf("unexpected membership: %b", c)
	}
	if c.Count() != 2 {
		t.Errorf("expected count 2, got %d", c.Count())
	}
	c = c.Clear(3)
	if d, ok := c.Only(); !ok || d != 7 {
		t.Errorf("expected only candidate 7, got %d (ok=%v)", d, ok)
	}
	if got := NewCandidates([]int{2, 5, 9}).ToSlice(); len(got) != 3 || got[0] != 2 || got[1] != 5 || got[2] != 9 {
		t.Errorf("unexpected ToSlice: %v", got)
	}
	if AllCandidates.Count() != 9 {
		t.Errorf("full set should have 9 digits, got %d", AllCandidates.Count())
	}
}

func TestPeers_EveryCellHasTwenty(t *testing.T) {
	for i := 0; i < 81; i++ {
		if len(Peers[i]) != 20 {
			t.Fatalf("cell %d has %d peers, want 20", i, len(Peers[i]))
		}
	}
}

func TestAllUnits_TwentySevenHouses(t *testing.T) {
	units := AllUnits()
	if len(units) != 27 {
		t.Fatalf("expected 27 houses, got %d", len(units))
	}
	counts := map[UnitType]int{}
	for _, u := range units {
		counts[u.Type]++
		if len(u.Cells) != 9 {
			t.Errorf("%v %d has %d cells, want 9", u.Type, u.Index, len(u.Cells))
		}
	}
	if counts[UnitRow] != 9 || counts[UnitCol] != 9 || counts[UnitBox] != 9 {
		t.Errorf("unexpected house counts: %v", counts)
	}
}

func TestBoxOf(t *testing.T) {
	cases := []struct{ r, c, box int }{
		{0, 0, 0}, {0, 8, 2}, {4, 4, 4}, {8, 0, 6}, {8, 8, 8}, {5, 3, 4},
	}
	for _, tc := range cases {
		if got := BoxOf(IndexOf(tc.r, tc.c)); got != tc.box {
			t.Errorf("BoxOf(R%dC%d) = %d, want %d", tc.r+1, tc.c+1, got, tc.box)
		}
	}
}

func TestArePeers(t *testing.T) {
	if !ArePeers(IndexOf(0, 0), IndexOf(0, 8)) {
		t.Error("same row cells should be peers")
	}
	if !ArePeers(IndexOf(0, 0), IndexOf(8, 0)) {
		t.Error("same column cells should be peers")
	}
	if !ArePeers(IndexOf(0, 0), IndexOf(2, 2)) {
		t.Error("same box cells should be peers")
	}
	if ArePeers(IndexOf(0, 0), IndexOf(4, 4)) {
		t.Error("R1C1 and R5C5 share no house")
	}
	if ArePeers(IndexOf(3, 3), IndexOf(3, 3)) {
		t.Error("a cell is not its own peer")
	}
}

func TestCombinations_OrderAndCount(t *testing.T) {
	combos := Combinations([]int{1, 2, 3, 4}, 2)
	want := [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	if len(combos) != len(want) {
		t.Fatalf("expected %d combinations, got %d", len(want), len(combos))
	}
	for i := range want {
		if combos[i][0] != want[i][0] || combos[i][1] != want[i][1] {
			t.Errorf("combination %d = %v, want %v", i, combos[i], want[i])
		}
	}
}

func TestNewBoard_InitialCandidates(t *testing.T) {
	grid, err := puzzleio.Parse(fixtures.ClassicEasy)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	b, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			if !b.Candidates[i].IsEmpty() {
				t.Fatalf("filled cell %d should have no candidates", i)
			}
			continue
		}
		cand := b.Candidates[i]
		if cand.IsEmpty() {
			t.Fatalf("empty cell %d has no candidates", i)
		}
		for _, peer := range Peers[i] {
			if v := b.Cells[peer]; v != 0 && cand.Has(v) {
				t.Fatalf("cell %d still has candidate %d placed at peer %d", i, v, peer)
			}
		}
	}
}

func TestApplyStep_PlacementPropagatesToPeers(t *testing.T) {
	grid, _ := puzzleio.Parse(fixtures.ClassicEasy)
	b, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	step := firstFiring(b)
	if step == nil || len(step.Placements) == 0 {
		t.Fatal("expected an opening placement step on the easy fixture")
	}
	p := step.Placements[0]
	if err := b.ApplyStep(step); err != nil {
		t.Fatalf("ApplyStep error: %v", err)
	}
	idx := IndexOf(p.Row, p.Col)
	if b.Cells[idx] != p.Digit {
		t.Errorf("expected %d placed at R%dC%d", p.Digit, p.Row+1, p.Col+1)
	}
	if !b.Candidates[idx].IsEmpty() {
		t.Error("placed cell should have no candidates left")
	}
	for _, peer := range Peers[idx] {
		if b.Cells[peer] == 0 && b.Candidates[peer].Has(p.Digit) {
			t.Errorf("peer %d still holds candidate %d after placement", peer, p.Digit)
		}
	}
}

func TestApplyStep_ContradictionDetected(t *testing.T) {
	grid, _ := puzzleio.Parse(fixtures.ClassicEasy)
	b, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	// Strip every candidate from the first empty cell.
	target := -1
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			target = i
			break
		}
	}
	var elims []core.Candidate
	for _, d := range b.Candidates[target].ToSlice() {
		elims = append(elims, MakeElimination(target, d))
	}
	step := &core.Step{Strategy: "Naked Single", Eliminations: elims}
	err = b.ApplyStep(step)
	if err == nil {
		t.Fatal("expected ErrContradiction")
	}
	if _, ok := err.(*core.ErrContradiction); !ok {
		t.Errorf("expected *core.ErrContradiction, got %T", err)
	}
}
