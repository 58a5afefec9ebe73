package human

import (
	"fmt"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

func bivalueCells(b BoardInterface) []int {
	var cells []int
	for idx := 0; idx < constants.TotalCells; idx++ {
		if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Count() == 2 {
			cells = append(cells, idx)
		}
	}
	return cells
}

// detectYWing finds a bivalue pivot {A,B} with two bivalue "wing" cells it
// sees, each sharing exactly one digit with it, whose own non-shared digits
// agree on a third digit C; C is then eliminated from every cell seeing
// both wings.
func detectYWing(b BoardInterface) *core.Step {
	bivalue := bivalueCells(b)
	for _, pivot := range bivalue {
		pc := b.GetCandidatesAt(pivot)
		var wings []int
		for _, idx := range bivalue {
			if idx == pivot || !ArePeers(pivot, idx) {
				continue
			}
			wc := b.GetCandidatesAt(idx)
			if wc.Intersect(pc).Count() == 1 && wc != pc {
				wings = append(wings, idx)
			}
		}
		for i := 0; i < len(wings); i++ {
			for j := i + 1; j < len(wings); j++ {
				w1, w2 := wings[i], wings[j]
				c1, c2 := b.GetCandidatesAt(w1), b.GetCandidatesAt(w2)
				shared1, _ := c1.Intersect(pc).Only()
				shared2, _ := c2.Intersect(pc).Only()
				if shared1 == shared2 {
					continue
				}
				other1 := c1.Subtract(pc)
				other2 := c2.Subtract(pc)
				if other1 != other2 || other1.Count() != 1 {
					continue
				}
				elimDigit, _ := other1.Only()
				elims := FindEliminationsSeeing(b, elimDigit, []int{pivot, w1, w2}, w1, w2)
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     "Y-Wing",
					Eliminations: elims,
					PatternCells: ToCellRefs([]int{pivot, w1, w2}),
					HouseIndex:   -1,
					Explanation: fmt.Sprintf("Pivot %s and wings %s, %s form a Y-Wing on %d: eliminate it from cells seeing both wings.",
						FormatCell(pivot), FormatCell(w1), FormatCell(w2), elimDigit),
					Highlights: core.Highlights{Primary: ToCellRefs([]int{pivot, w1, w2})},
				}
			}
		}
	}
	return nil
}

// detectXYZWing finds a trivalue pivot {A,B,C} with two bivalue wings whose
// candidates are each a subset of the pivot's, whose union recovers the
// pivot's three digits and whose intersection is a single digit Z; Z is
// eliminated from cells seeing the pivot and both wings.
func detectXYZWing(b BoardInterface) *core.Step {
	var trivalue []int
	for idx := 0; idx < constants.TotalCells; idx++ {
		if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Count() == 3 {
			trivalue = append(trivalue, idx)
		}
	}
	bivalue := bivalueCells(b)
	for _, pivot := range trivalue {
		pc := b.GetCandidatesAt(pivot)
		var wings []int
		for _, idx := range bivalue {
			if !ArePeers(pivot, idx) {
				continue
			}
			wc := b.GetCandidatesAt(idx)
			if wc.Subtract(pc).IsEmpty() {
				wings = append(wings, idx)
			}
		}
		for i := 0; i < len(wings); i++ {
			for j := i + 1; j < len(wings); j++ {
				w1, w2 := wings[i], wings[j]
				c1, c2 := b.GetCandidatesAt(w1), b.GetCandidatesAt(w2)
				if c1.Union(c2) != pc {
					continue
				}
				inter := c1.Intersect(c2)
				if inter.Count() != 1 {
					continue
				}
				digit, _ := inter.Only()
				elims := FindEliminationsSeeing(b, digit, []int{pivot, w1, w2}, pivot, w1, w2)
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     "XYZ-Wing",
					Eliminations: elims,
					PatternCells: ToCellRefs([]int{pivot, w1, w2}),
					HouseIndex:   -1,
					Explanation: fmt.Sprintf("Pivot %s and wings %s, %s form an XYZ-Wing on %d: eliminate it from cells seeing all three.",
						FormatCell(pivot), FormatCell(w1), FormatCell(w2), digit),
					Highlights: core.Highlights{Primary: ToCellRefs([]int{pivot, w1, w2})},
				}
			}
		}
	}
	return nil
}

// detectWWing finds two bivalue cells with identical candidates {A,B} that
// do not see each other, connected by a conjugate pair (strong link) on one
// of their digits whose two ends each see one of the bivalue cells; the
// other digit is eliminated from cells seeing both bivalue cells.
func detectWWing(b BoardInterface) *core.Step {
	bivalue := bivalueCells(b)
	for i := 0; i < len(bivalue); i++ {
		for j := i + 1; j < len(bivalue); j++ {
			p1, p2 := bivalue[i], bivalue[j]
			if ArePeers(p1, p2) {
				continue
			}
			c1, c2 := b.GetCandidatesAt(p1), b.GetCandidatesAt(p2)
			if c1 != c2 {
				continue
			}
			digits := c1.ToSlice()
			for _, bridge := range []struct{ bridge, elim int }{{digits[0], digits[1]}, {digits[1], digits[0]}} {
				if step := wWingWith(b, p1, p2, bridge.bridge, bridge.elim); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

func wWingWith(b BoardInterface, p1, p2, bridge, elim int) *core.Step {
	for _, unit := range AllUnits() {
		var positions []int
		for _, idx := range unit.Cells {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(bridge) {
				positions = append(positions, idx)
			}
		}
		if len(positions) != 2 {
			continue
		}
		e1, e2 := positions[0], positions[1]
		var ends [2]int
		if ArePeers(e1, p1) && ArePeers(e2, p2) {
			ends = [2]int{e1, e2}
		} else if ArePeers(e2, p1) && ArePeers(e1, p2) {
			ends = [2]int{e2, e1}
		} else {
			continue
		}
		if ends[0] == p1 || ends[0] == p2 || ends[1] == p1 || ends[1] == p2 {
			continue
		}
		elims := FindEliminationsSeeing(b, elim, []int{p1, p2}, p1, p2)
		if len(elims) == 0 {
			continue
		}
		return &core.Step{
			Strategy:     "W-Wing",
			Eliminations: elims,
			PatternCells: ToCellRefs([]int{p1, p2, ends[0], ends[1]}),
			HouseIndex:   -1,
			Explanation: fmt.Sprintf("%s and %s both hold {%d,%d}, linked by a strong link on %d: eliminate %d from cells seeing both.",
				FormatCell(p1), FormatCell(p2), bridge, elim, bridge, elim),
			Highlights: core.Highlights{Primary: ToCellRefs([]int{p1, p2}), Secondary: ToCellRefs([]int{ends[0], ends[1]})},
		}
	}
	return nil
}
