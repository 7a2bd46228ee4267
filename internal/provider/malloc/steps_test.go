package malloc

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

func newStep(t *testing.T) (*HardenStep, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "malloc.conf")
	return NewHardenStep(filesystem.NewRealFileSystem()).WithPath(path), path
}

func runCtx() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestHardenStep_Check_MissingFile(t *testing.T) {
	t.Parallel()

	s, _ := newStep(t)

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestHardenStep_Check_CorrectSymlink(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.Symlink(Option, path))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusSatisfied, status)
}

func TestHardenStep_Check_WrongTarget(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.Symlink("J", path))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestHardenStep_Check_RegularFile(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.WriteFile(path, []byte("C\n"), 0o644))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestHardenStep_Apply_CreatesSymlink(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)

	require.NoError(t, s.Apply(runCtx()))

	target, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, Option, target)
}

func TestHardenStep_Apply_BacksUpRegularFile(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.WriteFile(path, []byte("C\n"), 0o644))

	require.NoError(t, s.Apply(runCtx()))

	target, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, Option, target)

	bak, err := os.ReadFile(fileedit.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "C\n", string(bak))
}

func TestHardenStep_Apply_ReplacesWrongSymlinkWithoutBackup(t *testing.T) {
	t.Parallel()

	s, path := newStep(t)
	require.NoError(t, os.Symlink("J", path))

	require.NoError(t, s.Apply(runCtx()))

	target, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, Option, target)

	_, err = os.Lstat(fileedit.BackupPath(path))
	assert.True(t, os.IsNotExist(err))
}
