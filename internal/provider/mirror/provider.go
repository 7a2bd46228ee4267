// Package mirror contributes the update-source redirection step.
package mirror

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the installurl step.
type Provider struct {
	fs  ports.FileSystem
	mut *fileedit.Mutator
}

// NewProvider creates a new mirror Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator) *Provider {
	return &Provider{fs: fs, mut: mut}
}

// Steps returns the installurl step for the configured mirror.
func (p *Provider) Steps(url string) []step.Step {
	return []step.Step{NewInstallURLStep(p.fs, p.mut, url)}
}
