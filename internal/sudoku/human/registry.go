package human

import "github.com/refap3/sudokututor/internal/core"

// Strategy pairs a detector with the metadata the driver and rater need:
// its display name and the difficulty tier it belongs to.
type Strategy struct {
	Name   string
	Tier   core.Tier
	Detect func(BoardInterface) *core.Step
}

// Registry lists the twenty-one strategies in canonical solving order:
// the driver always tries them from the top and applies the first that
// fires, so the easiest applicable technique is always used next.
// Tier boundaries: 1-3 Tier1, 4-11 Tier2, 12-16 Tier3, 17-21 Tier4.
var Registry = []Strategy{
	{Name: "Full House", Tier: core.Tier1, Detect: detectFullHouse},
	{Name: "Naked Single", Tier: core.Tier1, Detect: detectNakedSingle},
	{Name: "Hidden Single", Tier: core.Tier1, Detect: detectHiddenSingle},

	{Name: "Naked Pair", Tier: core.Tier2, Detect: makeNakedSet(2)},
	{Name: "Hidden Pair", Tier: core.Tier2, Detect: makeHiddenSet(2)},
	{Name: "Naked Triple", Tier: core.Tier2, Detect: makeNakedSet(3)},
	{Name: "Hidden Triple", Tier: core.Tier2, Detect: makeHiddenSet(3)},
	{Name: "Naked Quad", Tier: core.Tier2, Detect: makeNakedSet(4)},
	{Name: "Hidden Quad", Tier: core.Tier2, Detect: makeHiddenSet(4)},
	{Name: "Pointing Pairs", Tier: core.Tier2, Detect: detectPointingPair},
	{Name: "Box-Line Reduction", Tier: core.Tier2, Detect: detectBoxLineReduction},

	{Name: "X-Wing", Tier: core.Tier3, Detect: makeFish(2, "X-Wing")},
	{Name: "Swordfish", Tier: core.Tier3, Detect: makeFish(3, "Swordfish")},
	{Name: "Y-Wing", Tier: core.Tier3, Detect: detectYWing},
	{Name: "XYZ-Wing", Tier: core.Tier3, Detect: detectXYZWing},
	{Name: "Simple Coloring", Tier: core.Tier3, Detect: detectSimpleColoring},

	{Name: "Unique Rectangle", Tier: core.Tier4, Detect: detectUniqueRectangle},
	{Name: "W-Wing", Tier: core.Tier4, Detect: detectWWing},
	{Name: "Skyscraper", Tier: core.Tier4, Detect: detectSkyscraper},
	{Name: "2-String Kite", Tier: core.Tier4, Detect: detectTwoStringKite},
	{Name: "BUG+1", Tier: core.Tier4, Detect: detectBUGPlus1},
}
