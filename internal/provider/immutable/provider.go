// Package immutable contributes the file flag hardening step.
package immutable

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// Provider contributes the flags step.
type Provider struct {
	flags collab.FileFlags
}

// NewProvider creates a new immutable Provider.
func NewProvider(flags collab.FileFlags) *Provider {
	return &Provider{flags: flags}
}

// Steps returns the flags step for the configured paths.
func (p *Provider) Steps(paths []string) []step.Step {
	return []step.Step{NewFlagsStep(p.flags, paths)}
}
