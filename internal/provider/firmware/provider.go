// Package firmware contributes the firmware-update suppression step.
package firmware

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the hosts-file block step.
type Provider struct {
	fs  ports.FileSystem
	mut *fileedit.Mutator
}

// NewProvider creates a new firmware Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator) *Provider {
	return &Provider{fs: fs, mut: mut}
}

// Steps returns the block step for the configured firmware host.
func (p *Provider) Steps(host, redirect string) []step.Step {
	return []step.Step{NewBlockStep(p.fs, p.mut, host, redirect)}
}
