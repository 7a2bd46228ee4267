package execution

import (
	"time"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/ports"
)

// Executor runs the step catalog in order: probe, prompt, apply, record.
//
// Steps run strictly sequentially. A failed step is recorded and surfaced
// but does not stop the run; every step produces exactly one Result. The
// run stops early only when the operator's terminal goes away (prompt
// error) or the context is cancelled between steps.
type Executor struct {
	prompter ports.Prompter
	logger   ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(prompter ports.Prompter, logger ports.Logger) *Executor {
	return &Executor{
		prompter: prompter,
		logger:   logger,
	}
}

// Run executes all steps in catalog order and returns their results.
func (e *Executor) Run(ctx step.RunContext, steps []step.Step) []Result {
	results := make([]Result, 0, len(steps))

	for _, s := range steps {
		select {
		case <-ctx.Context().Done():
			return results
		default:
		}

		result := e.runStep(ctx, s)
		results = append(results, result)

		if result.Outcome() == OutcomeDeclined && result.Error() != nil {
			// Prompt I/O failed; the operator is gone.
			return results
		}
	}

	return results
}

// runStep takes a single step through probe, prompt, and apply.
func (e *Executor) runStep(ctx step.RunContext, s step.Step) Result {
	id := s.ID()
	log := e.logger.With(ports.F("step", id.String()))

	status, err := s.Check(ctx)
	if err != nil {
		// A probe failure is not a step failure: the operator decides.
		log.Warn(ctx.Context(), "state probe failed, treating as not applied", ports.F("error", err))
		status = step.StatusNeedsApply
	}

	if status == step.StatusSatisfied {
		log.Info(ctx.Context(), "already applied, skipping")
		return NewResult(id, OutcomeSkipped, nil)
	}

	confirmed, err := e.prompter.Confirm(s.Prompt())
	if err != nil {
		log.Error(ctx.Context(), "prompt failed", ports.F("error", err))
		return NewResult(id, OutcomeDeclined, err)
	}
	if !confirmed {
		log.Info(ctx.Context(), "declined by operator")
		return NewResult(id, OutcomeDeclined, nil)
	}

	start := time.Now()
	err = s.Apply(ctx)
	duration := time.Since(start)

	if err != nil {
		log.Error(ctx.Context(), "apply failed", ports.F("error", err))
		return NewResult(id, OutcomeFailed, err).WithDuration(duration)
	}

	log.Info(ctx.Context(), "applied")
	return NewResult(id, OutcomeApplied, nil).WithDuration(duration)
}
