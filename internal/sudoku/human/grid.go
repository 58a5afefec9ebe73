// Package human implements the human-deduction Sudoku solver: the Grid
// model, the house/peer enumerator, the twenty-one strategy detectors, the
// strategy registry, and the driver loop and difficulty rater that use
// them.
package human

import (
	"fmt"
	"sort"
	"strings"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

// UnitType distinguishes the three house kinds.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

func (u UnitType) houseKind() core.HouseKind {
	switch u {
	case UnitRow:
		return core.HouseRow
	case UnitCol:
		return core.HouseCol
	default:
		return core.HouseBox
	}
}

// Unit is one of the 27 houses: its kind, index, and the nine cell indices
// it covers.
type Unit struct {
	Type  UnitType
	Index int
	Cells []int
}

// Precomputed peer and unit-membership tables, built once at init time.
var (
	Peers      [constants.TotalCells][]int
	RowPeers   [constants.TotalCells][]int
	ColPeers   [constants.TotalCells][]int
	BoxPeers   [constants.TotalCells][]int
	RowIndices [constants.GridSize][]int
	ColIndices [constants.GridSize][]int
	BoxIndices [constants.GridSize][]int
)

func init() {
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			idx := r*constants.GridSize + c
			RowIndices[r] = append(RowIndices[r], idx)
			ColIndices[c] = append(ColIndices[c], idx)
			box := (r/constants.BoxSize)*constants.BoxSize + c/constants.BoxSize
			BoxIndices[box] = append(BoxIndices[box], idx)
		}
	}
	for i := 0; i < constants.TotalCells; i++ {
		row, col := i/constants.GridSize, i%constants.GridSize
		box := BoxOf(i)
		seen := make(map[int]bool)
		for _, idx := range RowIndices[row] {
			if idx != i {
				RowPeers[i] = append(RowPeers[i], idx)
				seen[idx] = true
			}
		}
		for _, idx := range ColIndices[col] {
			if idx != i {
				ColPeers[i] = append(ColPeers[i], idx)
				seen[idx] = true
			}
		}
		for _, idx := range BoxIndices[box] {
			if idx != i {
				BoxPeers[i] = append(BoxPeers[i], idx)
				seen[idx] = true
			}
		}
		peers := make([]int, 0, len(seen))
		for idx := range seen {
			peers = append(peers, idx)
		}
		sort.Ints(peers)
		Peers[i] = peers
	}
}

// RowOf, ColOf, BoxOf, IndexOf convert between a flat cell index and its
// coordinates. BoxOf is box_of(r,c) = 3*(r/3) + c/3.
func RowOf(idx int) int { return idx / constants.GridSize }
func ColOf(idx int) int { return idx % constants.GridSize }
func BoxOf(idx int) int {
	row, col := idx/constants.GridSize, idx%constants.GridSize
	return (row/constants.BoxSize)*constants.BoxSize + col/constants.BoxSize
}
func IndexOf(row, col int) int { return row*constants.GridSize + col }

func ToCellRef(idx int) core.CellRef { return core.CellRef{Row: RowOf(idx), Col: ColOf(idx)} }

func ToCellRefs(cells []int) []core.CellRef {
	refs := make([]core.CellRef, len(cells))
	for i, idx := range cells {
		refs[i] = ToCellRef(idx)
	}
	return refs
}

// ArePeers reports whether two distinct cells share a row, column, or box.
func ArePeers(idx1, idx2 int) bool {
	if idx1 == idx2 {
		return false
	}
	r1, c1 := idx1/constants.GridSize, idx1%constants.GridSize
	r2, c2 := idx2/constants.GridSize, idx2%constants.GridSize
	return r1 == r2 || c1 == c2 || BoxOf(idx1) == BoxOf(idx2)
}

// AllSeeAll reports whether every cell in cellsA sees every cell in cellsB.
func AllSeeAll(cellsA, cellsB []int) bool {
	for _, a := range cellsA {
		for _, b := range cellsB {
			if !ArePeers(a, b) {
				return false
			}
		}
	}
	return true
}

// AllUnits returns the 27 houses: 9 rows, 9 columns, 9 boxes.
func AllUnits() []Unit {
	units := make([]Unit, 0, constants.GridSize*3)
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitRow, Index: i, Cells: RowIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitCol, Index: i, Cells: ColIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitBox, Index: i, Cells: BoxIndices[i]})
	}
	return units
}

// FormatCell renders a 1-indexed "R{row}C{col}" label.
func FormatCell(idx int) string {
	return fmt.Sprintf("R%dC%d", RowOf(idx)+1, ColOf(idx)+1)
}

func FormatCells(cells []int) string {
	if len(cells) == 0 {
		return ""
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = FormatCell(c)
	}
	return strings.Join(parts, ", ")
}

func FormatDigits(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ", ")
}

// Combinations returns every k-element combination of slice, in
// ascending lexicographic order of index, so that detectors scanning
// combinations always visit them in the same order.
func Combinations(slice []int, k int) [][]int {
	if k <= 0 || k > len(slice) {
		return nil
	}
	var out [][]int
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == k {
			combo := make([]int, k)
			copy(combo, chosen)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(slice)-(k-len(chosen)); i++ {
			rec(i+1, append(chosen, slice[i]))
		}
	}
	rec(0, nil)
	return out
}

// MakeElimination builds a Candidate elimination record for cell/digit.
func MakeElimination(cell, digit int) core.Candidate {
	return core.Candidate{Row: RowOf(cell), Col: ColOf(cell), Digit: digit}
}

// DedupeEliminations removes duplicate (row,col,digit) eliminations,
// preserving first-seen order.
func DedupeEliminations(elims []core.Candidate) []core.Candidate {
	if len(elims) <= 1 {
		return elims
	}
	seen := make(map[core.Candidate]bool, len(elims))
	out := make([]core.Candidate, 0, len(elims))
	for _, e := range elims {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// FindEliminationsSeeing returns, in ascending cell-index order, every
// cell outside excludeSelf that currently carries digit as a candidate and
// sees every cell in mustSee.
func FindEliminationsSeeing(b BoardInterface, digit int, excludeSelf []int, mustSee ...int) []core.Candidate {
	exclude := make(map[int]bool, len(excludeSelf))
	for _, idx := range excludeSelf {
		exclude[idx] = true
	}
	var elims []core.Candidate
	for idx := 0; idx < constants.TotalCells; idx++ {
		if exclude[idx] || b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(digit) {
			continue
		}
		sees := true
		for _, target := range mustSee {
			if !ArePeers(idx, target) {
				sees = false
				break
			}
		}
		if sees {
			elims = append(elims, MakeElimination(idx, digit))
		}
	}
	return elims
}
