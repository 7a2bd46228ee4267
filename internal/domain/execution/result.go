// Package execution orchestrates the hardening step sequence.
package execution

import (
	"time"

	"github.com/puffsec/lockdown/internal/domain/step"
)

// Outcome is the recorded end state of one step in a run.
type Outcome string

const (
	// OutcomeSkipped means the probe found the effect already present.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDeclined means the operator answered no at the prompt.
	OutcomeDeclined Outcome = "declined"
	// OutcomeApplied means the mutation completed successfully.
	OutcomeApplied Outcome = "applied"
	// OutcomeFailed means a required action errored out.
	OutcomeFailed Outcome = "failed"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// Result captures the outcome of one step. Every step in a run produces
// exactly one Result.
type Result struct {
	stepID   step.StepID
	outcome  Outcome
	err      error
	duration time.Duration
}

// NewResult creates a new Result.
func NewResult(stepID step.StepID, outcome Outcome, err error) Result {
	return Result{
		stepID:  stepID,
		outcome: outcome,
		err:     err,
	}
}

// StepID returns the ID of the step the result belongs to.
func (r Result) StepID() step.StepID {
	return r.stepID
}

// Outcome returns the recorded outcome.
func (r Result) Outcome() Outcome {
	return r.outcome
}

// Error returns the failure reason, if any.
func (r Result) Error() error {
	return r.err
}

// Duration returns how long the step's Apply took.
func (r Result) Duration() time.Duration {
	return r.duration
}

// WithDuration returns a new Result with duration set.
func (r Result) WithDuration(d time.Duration) Result {
	r.duration = d
	return r
}
