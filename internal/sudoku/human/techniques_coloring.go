package human

import (
	"fmt"
	"sort"

	"github.com/refap3/sudokututor/internal/core"
)

// detectSimpleColoring builds, per digit, the graph of conjugate pairs
// (houses where the digit has exactly two candidate cells) and
// two-colors each connected component by BFS. Rule 1: two same-colored
// cells sharing a house mean that whole color is impossible, eliminating
// the digit from every cell of that color. Rule 2: a cell outside the
// component that sees cells of both colors cannot hold the digit.
func detectSimpleColoring(b BoardInterface) *core.Step {
	for digit := 1; digit <= 9; digit++ {
		adjacency := make(map[int][]int)
		var nodes []int
		nodeSet := make(map[int]bool)
		for _, unit := range AllUnits() {
			var positions []int
			for _, idx := range unit.Cells {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, idx)
				}
			}
			if len(positions) != 2 {
				continue
			}
			a, c := positions[0], positions[1]
			adjacency[a] = append(adjacency[a], c)
			adjacency[c] = append(adjacency[c], a)
			for _, n := range positions {
				if !nodeSet[n] {
					nodeSet[n] = true
					nodes = append(nodes, n)
				}
			}
		}
		// A graph under four nodes cannot produce anything a simpler
		// technique would not already find.
		if len(nodes) < 4 {
			continue
		}
		visited := make(map[int]bool)
		for _, start := range nodes {
			if visited[start] {
				continue
			}
			colors := map[int]int{start: 0}
			queue := []int{start}
			visited[start] = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, nb := range adjacency[cur] {
					if visited[nb] {
						continue
					}
					visited[nb] = true
					colors[nb] = 1 - colors[cur]
					queue = append(queue, nb)
				}
			}
			var comp []int
			for n := range colors {
				comp = append(comp, n)
			}
			sort.Ints(comp)

			if step := coloringRuleOne(b, digit, comp, colors); step != nil {
				return step
			}
			if step := coloringRuleTwo(b, digit, comp, colors); step != nil {
				return step
			}
		}
	}
	return nil
}

func coloringRuleOne(b BoardInterface, digit int, comp []int, colors map[int]int) *core.Step {
	for i := 0; i < len(comp); i++ {
		for j := i + 1; j < len(comp); j++ {
			a, c := comp[i], comp[j]
			if colors[a] != colors[c] || !ArePeers(a, c) {
				continue
			}
			color := colors[a]
			var elims []core.Candidate
			var pattern []int
			for _, idx := range comp {
				if colors[idx] == color {
					pattern = append(pattern, idx)
					elims = append(elims, MakeElimination(idx, digit))
				}
			}
			if len(elims) == 0 {
				continue
			}
			return &core.Step{
				Strategy:     "Simple Coloring",
				Eliminations: elims,
				PatternCells: ToCellRefs(pattern),
				HouseIndex:   -1,
				Explanation: fmt.Sprintf("%s and %s share a color on %d yet see each other: that color is impossible, eliminate %d from it.",
					FormatCell(a), FormatCell(c), digit, digit),
				Highlights: core.Highlights{Primary: ToCellRefs(pattern)},
			}
		}
	}
	return nil
}

func coloringRuleTwo(b BoardInterface, digit int, comp []int, colors map[int]int) *core.Step {
	var colorA, colorB []int
	in := make(map[int]bool, len(comp))
	for _, idx := range comp {
		in[idx] = true
		if colors[idx] == 0 {
			colorA = append(colorA, idx)
		} else {
			colorB = append(colorB, idx)
		}
	}
	var elims []core.Candidate
	for idx := 0; idx < len(Peers); idx++ {
		if in[idx] || b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(digit) {
			continue
		}
		seesA, seesB := false, false
		for _, a := range colorA {
			if ArePeers(idx, a) {
				seesA = true
				break
			}
		}
		for _, c := range colorB {
			if ArePeers(idx, c) {
				seesB = true
				break
			}
		}
		if seesA && seesB {
			elims = append(elims, MakeElimination(idx, digit))
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &core.Step{
		Strategy:     "Simple Coloring",
		Eliminations: elims,
		PatternCells: ToCellRefs(comp),
		HouseIndex:   -1,
		Explanation:  fmt.Sprintf("Cells seeing both colors of the %d coloring chain cannot be %d.", digit, digit),
		Highlights:   core.Highlights{Primary: ToCellRefs(comp)},
	}
}
