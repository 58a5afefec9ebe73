// Package fixtures holds a handful of named sample puzzles used by the
// solver test suite to exercise each difficulty tier and edge case. It is
// not a runtime puzzle bank; cmd/sudokututor generates puzzles on demand
// instead of serving from a fixed set.
package fixtures

// ClassicEasy solves entirely with tier-1 strategies (Full/Naked/Hidden
// Single).
const ClassicEasy = "003020600\n900305001\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300"

// PointingPairTrigger requires at least Pointing Pairs to progress, so it
// rates at tier 2 or higher.
const PointingPairTrigger = "000030086\n000020040\n340000900\n700600000\n060080030\n000003007\n003000024\n010060000\n850090000"

// XWingRequired requires an X-Wing elimination, so it rates at tier 3 or
// higher.
const XWingRequired = "000600400\n700003600\n000091080\n000000060\n025010340\n000000010\n900007000\n008539070\n042000100"

// ArtoInkala is Arto Inkala's 2012 "world's hardest sudoku". Depending on
// technique coverage it either solves at tier 4 or gets stuck, in which
// case a brute-force completion is still expected to succeed.
const ArtoInkala = "003008000\n010030000\n000004700\n070060008\n000000023\n000900600\n500300000\n000080091\n000700040"

// AlreadySolved is a complete, valid grid with no empty cells.
const AlreadySolved = "534678912\n672195348\n198342567\n859761423\n426853791\n713924856\n961537284\n287419635\n345286179"

// DuplicateGivenRow repeats a digit within row 0's givens and must be
// rejected at construction as an invalid initial board.
const DuplicateGivenRow = "553678912\n672195348\n198342567\n859761423\n426853791\n713924856\n961537284\n287419635\n345286179"

// Named pairs every sample above with a short, stable identifier, for
// table-driven tests that want to report which fixture failed.
var Named = map[string]string{
	"classic-easy":          ClassicEasy,
	"pointing-pair-trigger": PointingPairTrigger,
	"x-wing-required":       XWingRequired,
	"arto-inkala":           ArtoInkala,
	"already-solved":        AlreadySolved,
	"duplicate-given-row":   DuplicateGivenRow,
}
