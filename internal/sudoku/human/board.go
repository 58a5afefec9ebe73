package human

import (
	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

// BoardInterface is the read-only view of a board that the 21 strategy
// detectors depend on. Decoupling the detectors from the concrete Board
// type keeps them test-friendly and keeps the board's mutation API out of
// reach of anything but the driver.
type BoardInterface interface {
	GetCell(idx int) int
	GetCandidatesAt(idx int) Candidates
}

// Board is the grid model: cell values, which cells were givens, and
// each empty cell's candidate set.
type Board struct {
	Cells      [constants.TotalCells]int
	Givens     [constants.TotalCells]bool
	Candidates [constants.TotalCells]Candidates
}

var _ BoardInterface = (*Board)(nil)

// NewBoard builds a Board from 81 initial values (0 = empty, row-major),
// computing initial candidates per invariant (1). It returns
// *core.ErrInvalidInitialBoard if any house contains the same non-zero
// digit twice.
func NewBoard(values [constants.TotalCells]int) (*Board, error) {
	b := &Board{}
	for i, v := range values {
		b.Cells[i] = v
		b.Givens[i] = v != 0
	}
	if err := b.checkGivens(); err != nil {
		return nil, err
	}
	b.initCandidates()
	return b, nil
}

func (b *Board) checkGivens() error {
	for _, unit := range AllUnits() {
		seen := make(map[int]bool, constants.GridSize)
		for _, idx := range unit.Cells {
			d := b.Cells[idx]
			if d == 0 {
				continue
			}
			if seen[d] {
				return &core.ErrInvalidInitialBoard{
					Row: RowOf(idx), Col: ColOf(idx), Digit: d,
					Kind: unit.Type.houseKind(), Index: unit.Index,
				}
			}
			seen[d] = true
		}
	}
	return nil
}

func (b *Board) initCandidates() {
	for i := 0; i < constants.TotalCells; i++ {
		if b.Cells[i] != 0 {
			b.Candidates[i] = 0
			continue
		}
		var cands Candidates
		for d := 1; d <= 9; d++ {
			if b.canPlace(i, d) {
				cands = cands.Set(d)
			}
		}
		b.Candidates[i] = cands
	}
}

func (b *Board) canPlace(idx, digit int) bool {
	for _, peer := range Peers[idx] {
		if b.Cells[peer] == digit {
			return false
		}
	}
	return true
}

// GetCell implements BoardInterface.
func (b *Board) GetCell(idx int) int { return b.Cells[idx] }

// GetCandidatesAt implements BoardInterface.
func (b *Board) GetCandidatesAt(idx int) Candidates { return b.Candidates[idx] }

// IsSolved reports whether every cell is filled.
func (b *Board) IsSolved() bool {
	for _, v := range b.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	nb := &Board{}
	nb.Cells = b.Cells
	nb.Givens = b.Givens
	nb.Candidates = b.Candidates
	return nb
}

// ApplyStep mutates the board: first remove every
// elimination from its cell's candidates, then for each placement set the
// value, clear the cell's own candidates, and remove that digit from every
// peer's candidates. It returns *core.ErrContradiction if any empty peer
// would lose its last candidate.
func (b *Board) ApplyStep(step *core.Step) error {
	for _, e := range step.Eliminations {
		idx := IndexOf(e.Row, e.Col)
		b.Candidates[idx] = b.Candidates[idx].Clear(e.Digit)
		if b.Cells[idx] == 0 && b.Candidates[idx].IsEmpty() {
			return &core.ErrContradiction{Row: e.Row, Col: e.Col}
		}
	}
	for _, p := range step.Placements {
		idx := IndexOf(p.Row, p.Col)
		b.Cells[idx] = p.Digit
		b.Candidates[idx] = 0
		for _, peer := range Peers[idx] {
			if b.Cells[peer] != 0 {
				continue
			}
			if b.Candidates[peer].Has(p.Digit) {
				b.Candidates[peer] = b.Candidates[peer].Clear(p.Digit)
				if b.Candidates[peer].IsEmpty() {
					return &core.ErrContradiction{Row: RowOf(peer), Col: ColOf(peer)}
				}
			}
		}
	}
	return nil
}
