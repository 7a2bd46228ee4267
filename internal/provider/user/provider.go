// Package user contributes the account deprivileging step.
package user

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the deprivilege step.
type Provider struct {
	fs  ports.FileSystem
	mut *fileedit.Mutator
}

// NewProvider creates a new user Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator) *Provider {
	return &Provider{fs: fs, mut: mut}
}

// Steps returns the deprivilege step.
func (p *Provider) Steps() []step.Step {
	return []step.Step{NewDeprivilegeStep(p.fs, p.mut)}
}
