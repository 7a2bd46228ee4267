// Package usb contributes the USB device disabling step.
package usb

import (
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the disable step.
type Provider struct {
	fs  ports.FileSystem
	mut *fileedit.Mutator
}

// NewProvider creates a new usb Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator) *Provider {
	return &Provider{fs: fs, mut: mut}
}

// Steps returns the disable step for the configured drivers.
func (p *Provider) Steps(drivers []string) []step.Step {
	return []step.Step{NewDisableStep(p.fs, p.mut, drivers)}
}
