// Package tor contributes the anonymizing-network steps.
package tor

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the tor service and proxy environment steps.
type Provider struct {
	fs       ports.FileSystem
	mut      *fileedit.Mutator
	services collab.ServiceManager
}

// NewProvider creates a new tor Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator, services collab.ServiceManager) *Provider {
	return &Provider{fs: fs, mut: mut, services: services}
}

// Steps returns the tor steps: daemon first, then the proxy environment.
func (p *Provider) Steps() []step.Step {
	return []step.Step{
		NewServiceStep(p.services),
		NewProxyEnvStep(p.fs, p.mut),
	}
}
