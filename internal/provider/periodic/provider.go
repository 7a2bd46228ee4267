// Package periodic contributes the scheduled maintenance step.
package periodic

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/config"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// Provider contributes the schedule step.
type Provider struct {
	fs        ports.FileSystem
	mut       *fileedit.Mutator
	scheduler collab.Scheduler
}

// NewProvider creates a new periodic Provider.
func NewProvider(fs ports.FileSystem, mut *fileedit.Mutator, scheduler collab.Scheduler) *Provider {
	return &Provider{fs: fs, mut: mut, scheduler: scheduler}
}

// Steps returns the schedule step for the configured jobs.
func (p *Provider) Steps(jobs []config.PeriodicJob) []step.Step {
	return []step.Step{NewScheduleStep(p.fs, p.mut, p.scheduler, jobs)}
}
