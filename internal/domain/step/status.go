package step

// Status is the answer of a step's idempotency probe.
type Status string

const (
	// StatusSatisfied indicates the step's effect is already present.
	StatusSatisfied Status = "satisfied"
	// StatusNeedsApply indicates the step's effect is absent.
	StatusNeedsApply Status = "needs-apply"
	// StatusUnknown indicates the probe could not determine the state.
	StatusUnknown Status = "unknown"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// NeedsAction returns true if the step should be offered to the operator.
func (s Status) NeedsAction() bool {
	return s != StatusSatisfied
}
