// Package malloc contributes the memory-allocator hardening step.
package malloc

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the harden step.
type Provider struct {
	fs ports.FileSystem
}

// NewProvider creates a new malloc Provider.
func NewProvider(fs ports.FileSystem) *Provider {
	return &Provider{fs: fs}
}

// Steps returns the harden step.
func (p *Provider) Steps() []step.Step {
	return []step.Step{NewHardenStep(p.fs)}
}
