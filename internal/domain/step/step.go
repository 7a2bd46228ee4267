// Package step defines the contract every hardening step satisfies.
package step

// Step represents one independently confirmable, idempotent system mutation.
// Each step can probe its current state and apply its effect.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() StepID

	// Prompt returns the yes/no question shown to the operator before the
	// step is applied.
	Prompt() string

	// Check determines whether the step's effect is already present on the
	// host. It must have no side effects, and must treat missing files,
	// absent packages, and absent groups as StatusNeedsApply, not errors.
	Check(ctx RunContext) (Status, error)

	// Apply performs the step's mutation. It must be safe to call when the
	// effect is partially present, and must write any backup before
	// overwriting an existing file.
	Apply(ctx RunContext) error

	// Explain returns human-readable context for this step.
	Explain() Explanation
}
