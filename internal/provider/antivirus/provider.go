// Package antivirus contributes the ClamAV enablement step.
package antivirus

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// Provider contributes the antivirus service step.
type Provider struct {
	services collab.ServiceManager
}

// NewProvider creates a new antivirus Provider.
func NewProvider(services collab.ServiceManager) *Provider {
	return &Provider{services: services}
}

// Steps returns the service step.
func (p *Provider) Steps() []step.Step {
	return []step.Step{NewServiceStep(p.services)}
}
