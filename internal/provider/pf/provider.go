// Package pf contributes the firewall replacement step.
package pf

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the ruleset step.
type Provider struct {
	fs       ports.FileSystem
	mut      *fileedit.Mutator
	firewall collab.Firewall
}

// NewProvider creates a new pf Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator, firewall collab.Firewall) *Provider {
	return &Provider{fs: fs, mut: mut, firewall: firewall}
}

// Steps returns the ruleset step.
func (p *Provider) Steps() []step.Step {
	return []step.Step{NewRulesetStep(p.fs, p.mut, p.firewall)}
}
