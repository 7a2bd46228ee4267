// Package xenodm contributes the display manager setup step.
package xenodm

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the setup step.
type Provider struct {
	fs       ports.FileSystem
	mut      *fileedit.Mutator
	services collab.ServiceManager
}

// NewProvider creates a new xenodm Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator, services collab.ServiceManager) *Provider {
	return &Provider{fs: fs, mut: mut, services: services}
}

// Steps returns the setup step for the configured window manager.
func (p *Provider) Steps(windowManager string) []step.Step {
	return []step.Step{NewSetupStep(p.fs, p.mut, p.services, windowManager)}
}
