package usb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puffsec/lockdown/internal/adapters/filesystem"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
)

var drivers = []string{"usb", "xhci", "ehci", "uhci"}

func newStep(t *testing.T) (*DisableStep, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bsd.re-config")
	fs := filesystem.NewRealFileSystem()
	return NewDisableStep(fs, fileedit.NewMutator(fs), drivers).WithPath(path), path
}

func runCtx() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestDisableStep_Check_MissingFile(t *testing.T) {
	t.Parallel()

	s, _ := newStep(t)

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestDisableStep_Check_PartialDirectives(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.WriteFile(path, []byte("disable usb\ndisable xhci\n"), 0o644))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestDisableStep_Check_AllDirectivesPresent(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.WriteFile(path, []byte("disable usb\ndisable xhci\ndisable ehci\ndisable uhci\n"), 0o644))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusSatisfied, status)
}

func TestDisableStep_Apply_AppendsOnlyMissing(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.WriteFile(path, []byte("disable xhci\n"), 0o644))

	require.NoError(t, s.Apply(runCtx()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "disable xhci\ndisable usb\ndisable ehci\ndisable uhci\n", string(got))

	bak, err := os.ReadFile(fileedit.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "disable xhci\n", string(bak))
}

func TestDisableStep_Apply_CreatesFile(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)

	require.NoError(t, s.Apply(runCtx()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "disable usb\ndisable xhci\ndisable ehci\ndisable uhci\n", string(got))
}
