// Package catalog assembles the ordered list of hardening steps.
package catalog

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/config"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
	"github.com/puffsec/lockdown/internal/provider/antivirus"
	"github.com/puffsec/lockdown/internal/provider/firmware"
	"github.com/puffsec/lockdown/internal/provider/immutable"
	"github.com/puffsec/lockdown/internal/provider/malloc"
	"github.com/puffsec/lockdown/internal/provider/mirror"
	"github.com/puffsec/lockdown/internal/provider/periodic"
	"github.com/puffsec/lockdown/internal/provider/pf"
	"github.com/puffsec/lockdown/internal/provider/pkg"
	"github.com/puffsec/lockdown/internal/provider/sysctl"
	"github.com/puffsec/lockdown/internal/provider/tor"
	"github.com/puffsec/lockdown/internal/provider/usb"
	"github.com/puffsec/lockdown/internal/provider/user"
	"github.com/puffsec/lockdown/internal/provider/xenodm"
)

// Deps carries the shared collaborators each provider draws from.
type Deps struct {
	FS        ports.FileSystem
	Runner    ports.CommandRunner
	Mutator   *fileedit.Mutator
	Packages  collab.PackageManager
	Services  collab.ServiceManager
	Firewall  collab.Firewall
	Scheduler collab.Scheduler
	FileFlags collab.FileFlags
}

// Build returns the full catalog in execution order. Ordering satisfies
// prerequisites only: packages first, then the services and files that
// rely on them. No step reads another step's outcome.
func Build(cfg config.Config, deps Deps) []step.Step {
	var steps []step.Step

	steps = append(steps, pkg.NewProvider(deps.Packages).Steps(cfg.Packages)...)
	steps = append(steps, user.NewProvider(deps.FS, deps.Mutator).Steps()...)
	steps = append(steps, pf.NewProvider(deps.FS, deps.Mutator, deps.Firewall).Steps()...)
	steps = append(steps, tor.NewProvider(deps.FS, deps.Mutator, deps.Services).Steps()...)
	steps = append(steps, mirror.NewProvider(deps.FS, deps.Mutator).Steps(cfg.MirrorURL)...)
	steps = append(steps, firmware.NewProvider(deps.FS, deps.Mutator).Steps(cfg.FirmwareHost, cfg.FirmwareRedirect)...)
	steps = append(steps, usb.NewProvider(deps.FS, deps.Mutator).Steps(cfg.USBDrivers)...)
	steps = append(steps, antivirus.NewProvider(deps.Services).Steps()...)
	steps = append(steps, malloc.NewProvider(deps.FS).Steps()...)
	steps = append(steps, sysctl.NewProvider(deps.FS, deps.Mutator, deps.Runner).Steps(cfg.Sysctls)...)
	steps = append(steps, periodic.NewProvider(deps.FS, deps.Mutator, deps.Scheduler).Steps(cfg.PeriodicJobs)...)
	steps = append(steps, immutable.NewProvider(deps.FileFlags).Steps(cfg.ImmutablePaths)...)
	steps = append(steps, xenodm.NewProvider(deps.FS, deps.Mutator, deps.Services).Steps(cfg.WindowManager)...)

	return steps
}
