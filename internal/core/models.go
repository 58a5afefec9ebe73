// Package core holds the value types shared by the solving engine and its
// transports: the Step record, cell/candidate references, and tiers.
package core

import "encoding/json"

// Tier is a difficulty class, 1-4, or 0 meaning "not solvable by the
// twenty-one implemented strategies".
type Tier int

const (
	TierNone Tier = 0
	Tier1    Tier = 1
	Tier2    Tier = 2
	Tier3    Tier = 3
	Tier4    Tier = 4
)

// HouseKind identifies the kind of house a Step's pattern primarily lives
// in, or HouseNone if the step is not anchored to a single house.
type HouseKind int

const (
	HouseNone HouseKind = iota
	HouseRow
	HouseCol
	HouseBox
)

func (k HouseKind) String() string {
	switch k {
	case HouseRow:
		return "row"
	case HouseCol:
		return "column"
	case HouseBox:
		return "box"
	default:
		return "none"
	}
}

// MarshalJSON renders the kind as its name rather than the enum ordinal.
func (k HouseKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// CellRef identifies a cell by zero-indexed row and column.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a digit to assign at a cell.
type Placement struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// Candidate identifies a digit to remove from a cell's candidate set.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// Highlights groups the cells a front-end would draw attention to when
// displaying a Step: the cells that define the pattern, and any secondary
// cells (e.g. the house the pattern lives in).
type Highlights struct {
	Primary   []CellRef `json:"primary"`
	Secondary []CellRef `json:"secondary,omitempty"`
}

// Step is an immutable description of one deduction. Equality is
// structural except for Explanation, which is derived prose and not part
// of a Step's identity.
type Step struct {
	Strategy     string      `json:"strategy"`
	Placements   []Placement `json:"placements,omitempty"`
	Eliminations []Candidate `json:"eliminations,omitempty"`
	PatternCells []CellRef   `json:"pattern_cells,omitempty"`
	HouseKind    HouseKind   `json:"house_kind"`
	HouseIndex   int         `json:"house_index"`
	Explanation  string      `json:"explanation"`
	Highlights   Highlights  `json:"highlights"`
}

// Empty reports whether the step carries neither a placement nor an
// elimination, which is never a valid Step to emit.
func (s *Step) Empty() bool {
	return len(s.Placements) == 0 && len(s.Eliminations) == 0
}
