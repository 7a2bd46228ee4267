package tor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puffsec/lockdown/internal/adapters/filesystem"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
)

// fakeServices is an in-memory ServiceManager.
type fakeServices struct {
	enabled    map[string]bool
	started    []string
	enabledErr error
}

func newFakeServices(enabled ...string) *fakeServices {
	m := make(map[string]bool, len(enabled))
	for _, svc := range enabled {
		m[svc] = true
	}
	return &fakeServices{enabled: m}
}

func (f *fakeServices) Enabled(_ context.Context, service string) (bool, error) {
	if f.enabledErr != nil {
		return false, f.enabledErr
	}
	return f.enabled[service], nil
}

func (f *fakeServices) Enable(_ context.Context, service string) error {
	f.enabled[service] = true
	return nil
}

func (f *fakeServices) Start(_ context.Context, service string) error {
	f.started = append(f.started, service)
	return nil
}

func runCtx() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestServiceStep_Check(t *testing.T) {
	t.Parallel()

	s := NewServiceStep(newFakeServices("tor"))
	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusSatisfied, status)

	s = NewServiceStep(newFakeServices())
	status, err = s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestServiceStep_Check_ProbeError(t *testing.T) {
	t.Parallel()

	svc := newFakeServices()
	svc.enabledErr = errors.New("rc.conf.local unreadable")

	s := NewServiceStep(svc)
	status, err := s.Check(runCtx())
	assert.Error(t, err)
	assert.Equal(t, step.StatusUnknown, status)
}

func TestServiceStep_Apply(t *testing.T) {
	t.Parallel()

	svc := newFakeServices()
	s := NewServiceStep(svc)

	require.NoError(t, s.Apply(runCtx()))

	assert.True(t, svc.enabled["tor"])
	assert.Equal(t, []string{"tor"}, svc.started)
}

func newProxyStep(t *testing.T) (*ProxyEnvStep, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile")
	fs := filesystem.NewRealFileSystem()
	return NewProxyEnvStep(fs, fileedit.NewMutator(fs)).WithProfilePath(path), path
}

func TestProxyEnvStep_Check_MissingProfile(t *testing.T) {
	t.Parallel()

	s, _ := newProxyStep(t)

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestProxyEnvStep_Check_PartialLines(t *testing.T) {
	t.Parallel()

	s, path := newProxyStep(t)
	require.NoError(t, os.WriteFile(path, []byte(ProxyLines[0]+"\n"), 0o644))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestProxyEnvStep_Check_CommentedLineDoesNotCount(t *testing.T) {
	t.Parallel()

	s, path := newProxyStep(t)
	var content string
	for _, line := range ProxyLines {
		content += "# " + line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusNeedsApply, status)
}

func TestProxyEnvStep_Apply_AppendsMissingLines(t *testing.T) {
	t.Parallel()

	s, path := newProxyStep(t)
	original := "# /etc/profile\numask 022\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	require.NoError(t, s.Apply(runCtx()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range ProxyLines {
		assert.True(t, fileedit.HasLine(string(got), line), line)
	}
	assert.Contains(t, string(got), "umask 022")

	bak, err := os.ReadFile(fileedit.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, string(bak))

	status, err := s.Check(runCtx())
	require.NoError(t, err)
	assert.Equal(t, step.StatusSatisfied, status)
}
