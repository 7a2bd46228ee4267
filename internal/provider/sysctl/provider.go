// Package sysctl contributes the kernel tunable step.
package sysctl

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the tune step.
type Provider struct {
	fs     ports.FileSystem
	mut    *fileedit.Mutator
	runner ports.CommandRunner
}

// NewProvider creates a new sysctl Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator, runner ports.CommandRunner) *Provider {
	return &Provider{fs: fs, mut: mut, runner: runner}
}

// Steps returns the tune step for the configured settings.
func (p *Provider) Steps(settings []string) []step.Step {
	return []step.Step{NewTuneStep(p.fs, p.mut, p.runner, settings)}
}
