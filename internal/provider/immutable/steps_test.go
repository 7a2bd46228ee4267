package immutable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puffsec/lockdown/internal/domain/step"
)

// fakeFlags is an in-memory FileFlags.
type fakeFlags struct {
	immutable map[string]bool
	set       []string
}

func newFakeFlags(immutable ...string) *fakeFlags {
	m := make(map[string]bool, len(immutable))
	for _, path := range immutable {
		m[path] = true
	}
	return &fakeFlags{immutable: m}
}

func (f *fakeFlags) IsImmutable(_ context.Context, path string) (bool, error) {
	return f.immutable[path], nil
}

func (f *fakeFlags) SetImmutable(_ context.Context, path string) error {
	f.immutable[path] = true
	f.set = append(f.set, path)
	return nil
}

var paths = []string{"/etc/rc", "/etc/rc.shutdown"}

func runCtx() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestFlagsStep_Check_AllFlagged(t *testing.T) {
	t.Parallel()

	s := NewFlagsStep(newFakeFlags(paths...), paths)

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusSatisfied, status)
}

func TestFlagsStep_Check_OneUnflagged(t *testing.T) {
	t.Parallel()

	s := NewFlagsStep(newFakeFlags("/etc/rc"), paths)

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestFlagsStep_Apply_FlagsOnlyMissing(t *testing.T) {
	t.Parallel()

	flags := newFakeFlags("/etc/rc")
	s := NewFlagsStep(flags, paths)

	require.NoError(t, s.Apply(runCtx()))

	assert.Equal(t, []string{"/etc/rc.shutdown"}, flags.set)
	assert.True(t, flags.immutable["/etc/rc.shutdown"])
}
