package immutable

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// FlagsStep marks the configured boot scripts immutable so they cannot
// be modified without dropping to single-user mode first.
type FlagsStep struct {
	id    step.StepID
	flags collab.FileFlags
	paths []string
}

// NewFlagsStep creates a new FlagsStep.
func NewFlagsStep(flags collab.FileFlags, paths []string) *FlagsStep {
	return &FlagsStep{
		id:    step.MustNewStepID("immutable:flags"),
		flags: flags,
		paths: paths,
	}
}

// ID returns the step identifier.
func (s *FlagsStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *FlagsStep) Prompt() string {
	return fmt.Sprintf("Mark %d boot scripts immutable (chflags schg)?", len(s.paths))
}

// Check reports satisfied when every path already carries the flag.
func (s *FlagsStep) Check(ctx step.RunContext) (step.Status, error) {
	for _, path := range s.paths {
		immutable, err := s.flags.IsImmutable(ctx.Context(), path)
		if err != nil {
			return step.StatusUnknown, err
		}
		if !immutable {
			return step.StatusNeedsApply, nil
		}
	}
	return step.StatusSatisfied, nil
}

// Apply sets the flag on every path that does not have it yet.
func (s *FlagsStep) Apply(ctx step.RunContext) error {
	for _, path := range s.paths {
		immutable, err := s.flags.IsImmutable(ctx.Context(), path)
		if err != nil {
			return err
		}
		if immutable {
			continue
		}
		if err := s.flags.SetImmutable(ctx.Context(), path); err != nil {
			return err
		}
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *FlagsStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Immutable boot scripts",
		"Sets the system immutable flag on the boot scripts so tampering requires single-user mode.",
	)
}

// Ensure FlagsStep implements step.Step.
var _ step.Step = (*FlagsStep)(nil)
