// Package fileedit implements guarded edits to system configuration files.
//
// Every destructive edit goes through a Mutator, which copies the original
// file to <path>.bak before the first overwrite of that path in a run, and
// then writes the new content through a temporary file and an atomic rename
// so readers never observe a half-written file.
package fileedit

import (
	"fmt"
	"os"

	"github.com/puffsec/lockdown/internal/ports"
)

// BackupSuffix is appended to a file's path to form its backup path.
const BackupSuffix = ".bak"

// Mutator performs backup-and-replace edits. It is scoped to a single run:
// the first edit of each path writes the backup, later edits in the same run
// leave it alone so the backup always holds the pre-run content.
type Mutator struct {
	fs       ports.FileSystem
	backedUp map[string]bool
}

// NewMutator creates a Mutator on top of the given file system.
func NewMutator(fs ports.FileSystem) *Mutator {
	return &Mutator{
		fs:       fs,
		backedUp: make(map[string]bool),
	}
}

// BackupPath returns the backup path for a target path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Replace writes content to path, backing up the existing file first.
// The backup must exist on disk before the original is touched; if the
// backup cannot be created the original is left untouched and an error is
// returned.
func (m *Mutator) Replace(path string, content []byte, perm os.FileMode) error {
	if err := m.ensureBackup(path); err != nil {
		return err
	}
	return m.writeAtomic(path, content, perm)
}

// Transform applies a pure old-content to new-content function to path.
// A missing file transforms from empty content and is created without a
// backup. Returns true if the file content changed.
func (m *Mutator) Transform(path string, perm os.FileMode, fn func(string) string) (bool, error) {
	var old string
	if m.fs.Exists(path) {
		data, err := m.fs.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", path, err)
		}
		old = string(data)
	}

	updated := fn(old)
	if updated == old {
		return false, nil
	}

	if err := m.ensureBackup(path); err != nil {
		return false, err
	}
	if err := m.writeAtomic(path, []byte(updated), perm); err != nil {
		return false, err
	}
	return true, nil
}

// AppendLine ensures path contains line exactly, appending it if absent.
// Returns true if the line was appended.
func (m *Mutator) AppendLine(path, line string, perm os.FileMode) (bool, error) {
	return m.Transform(path, perm, func(old string) string {
		return EnsureLine(old, line)
	})
}

// ensureBackup copies path to its backup path if path exists and has not
// been backed up during this run.
func (m *Mutator) ensureBackup(path string) error {
	if m.backedUp[path] || !m.fs.Exists(path) {
		return nil
	}

	bak := BackupPath(path)
	if err := m.fs.CopyFile(path, bak); err != nil {
		return fmt.Errorf("backing up %s to %s: %w", path, bak, err)
	}
	if !m.fs.Exists(bak) {
		return fmt.Errorf("backing up %s: backup %s missing after copy", path, bak)
	}

	m.backedUp[path] = true
	return nil
}

// writeAtomic writes data to path via a temporary sibling and rename.
func (m *Mutator) writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := m.fs.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := m.fs.Rename(tmp, path); err != nil {
		_ = m.fs.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
