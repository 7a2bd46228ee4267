package step

import "context"

// RunContext carries the per-invocation state every step receives: the
// cancellation context and the operator-chosen target user for user-directed
// steps. It replaces ambient global state; steps never consult anything
// outside it and their own collaborators.
type RunContext struct {
	ctx      context.Context
	username string
}

// NewRunContext creates a new RunContext.
func NewRunContext(ctx context.Context) RunContext {
	return RunContext{ctx: ctx}
}

// Context returns the underlying context.Context.
func (r RunContext) Context() context.Context {
	return r.ctx
}

// Username returns the target user for user-directed steps.
func (r RunContext) Username() string {
	return r.username
}

// WithUsername returns a new RunContext with the target user set.
func (r RunContext) WithUsername(username string) RunContext {
	r.username = username
	return r
}
