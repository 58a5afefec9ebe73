package core

import "fmt"

// ErrInvalidInitialBoard is returned when a puzzle's givens duplicate a
// digit within some house; the board is refused at construction.
type ErrInvalidInitialBoard struct {
	Row, Col, Digit int
	Kind            HouseKind
	Index           int
}

func (e *ErrInvalidInitialBoard) Error() string {
	return fmt.Sprintf("invalid initial board: digit %d duplicated in %s %d (at R%dC%d)",
		e.Digit, e.Kind, e.Index+1, e.Row+1, e.Col+1)
}

// StuckError is returned by the driver when no registered strategy fires
// before the puzzle is solved. This is not a bug; it is the expected
// outcome for puzzles beyond the implemented technique set.
type StuckError struct {
	LastStrategy string
}

func (e *StuckError) Error() string {
	if e.LastStrategy == "" {
		return "stuck: no strategy applicable"
	}
	return fmt.Sprintf("stuck after last applying %q", e.LastStrategy)
}

// ErrContradiction is returned when applying a step would remove the last
// candidate from an empty cell. On a puzzle known to have a solution this
// indicates a solver bug; the backtracker also returns it to signal "no
// solution" along the current branch.
type ErrContradiction struct {
	Row, Col int
}

func (e *ErrContradiction) Error() string {
	return fmt.Sprintf("contradiction detected: R%dC%d has no remaining candidates", e.Row+1, e.Col+1)
}

// ErrGenerationFailed is returned when the generator exhausts its attempt
// budget without producing an acceptable puzzle.
type ErrGenerationFailed struct {
	Tier     Tier
	Attempts int
}

func (e *ErrGenerationFailed) Error() string {
	return fmt.Sprintf("generation failed: no tier-%d puzzle found in %d attempts", e.Tier, e.Attempts)
}
