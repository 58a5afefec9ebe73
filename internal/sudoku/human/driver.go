package human

import (
	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

// Solve repeatedly applies the first firing strategy in Registry order,
// restarting from the top after every applied step, until the board is
// solved or no strategy fires. It returns the sequence of applied steps.
// A board that gets stuck before being solved yields *core.StuckError; one
// that never converges within the step budget is a defect in the registry,
// not a valid puzzle, and is reported the same way.
func Solve(b *Board) ([]core.Step, error) {
	var steps []core.Step
	lastStrategy := ""
	for i := 0; i < constants.MaxSolverSteps; i++ {
		if b.IsSolved() {
			return steps, nil
		}
		step := firstFiring(b)
		if step == nil {
			return steps, &core.StuckError{LastStrategy: lastStrategy}
		}
		if err := b.ApplyStep(step); err != nil {
			return steps, err
		}
		steps = append(steps, *step)
		lastStrategy = step.Strategy
	}
	return steps, &core.StuckError{LastStrategy: lastStrategy}
}

func firstFiring(b BoardInterface) *core.Step {
	for _, strat := range Registry {
		if step := strat.Detect(b); step != nil && !step.Empty() {
			return step
		}
	}
	return nil
}

// Rate runs Solve to completion on a clone of b and reports the highest
// tier among the strategies it needed, or core.TierNone if the board
// cannot be fully solved by the registry.
func Rate(b *Board) (core.Tier, error) {
	work := b.Clone()
	steps, err := Solve(work)
	if err != nil {
		if _, ok := err.(*core.StuckError); ok {
			return core.TierNone, nil
		}
		return core.TierNone, err
	}
	tier := core.TierNone
	tierOf := make(map[string]core.Tier, len(Registry))
	for _, s := range Registry {
		tierOf[s.Name] = s.Tier
	}
	for _, step := range steps {
		if t := tierOf[step.Strategy]; t > tier {
			tier = t
		}
	}
	return tier, nil
}
