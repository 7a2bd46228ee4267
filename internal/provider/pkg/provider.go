// Package pkg contributes the package installation steps.
package pkg

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// Provider turns the configured package list into install steps.
type Provider struct {
	mgr collab.PackageManager
}

// NewProvider creates a new pkg Provider.
func NewProvider(mgr collab.PackageManager) *Provider {
	return &Provider{mgr: mgr}
}

// Steps returns one install step per configured package, in order.
func (p *Provider) Steps(packages []string) []step.Step {
	steps := make([]step.Step, 0, len(packages))
	for _, name := range packages {
		steps = append(steps, NewInstallStep(name, p.mgr))
	}
	return steps
}
