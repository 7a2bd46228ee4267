// Package report persists run reports.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/puffsec/lockdown/internal/domain/execution"
	"github.com/puffsec/lockdown/internal/ports"
	"gopkg.in/yaml.v3"
)

// DefaultDir is where run reports live on the host.
const DefaultDir = "/var/db/lockdown"

// YAMLWriter persists run reports as YAML files.
type YAMLWriter struct {
	fs  ports.FileSystem
	dir string
}

// NewYAMLWriter creates a writer that stores reports under dir.
func NewYAMLWriter(fs ports.FileSystem, dir string) *YAMLWriter {
	return &YAMLWriter{fs: fs, dir: dir}
}

// Save writes the report to <dir>/last-run.yml, atomically.
func (w *YAMLWriter) Save(r execution.Report) (string, error) {
	data, err := yaml.Marshal(r.ToDTO())
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(w.dir, "last-run.yml")
	tmp := path + ".tmp"
	if err := w.fs.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := w.fs.Rename(tmp, path); err != nil {
		_ = w.fs.Remove(tmp)
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}
