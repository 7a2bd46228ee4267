package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/puffsec/lockdown/internal/ports"
	"gopkg.in/ini.v1"
)

// ServiceManager enables and starts system services.
type ServiceManager interface {
	Enabled(ctx context.Context, service string) (bool, error)
	Enable(ctx context.Context, service string) error
	Start(ctx context.Context, service string) error
}

// RcConfPath is where rcctl records enabled services.
const RcConfPath = "/etc/rc.conf.local"

// Rcctl drives the OpenBSD service supervisor. Enabling is delegated to
// rcctl; the enabled probe reads rc.conf.local directly so it stays a pure
// read with no fork.
type Rcctl struct {
	runner     ports.CommandRunner
	fs         ports.FileSystem
	rcConfPath string
}

// NewRcctl creates an Rcctl on the given runner and file system.
func NewRcctl(runner ports.CommandRunner, fs ports.FileSystem) *Rcctl {
	return &Rcctl{
		runner:     runner,
		fs:         fs,
		rcConfPath: RcConfPath,
	}
}

// WithRcConfPath overrides the rc.conf.local location.
func (r *Rcctl) WithRcConfPath(path string) *Rcctl {
	clone := *r
	clone.rcConfPath = path
	return &clone
}

// Enabled reports whether a service is enabled. rcctl records base system
// daemons as <service>_flags=... and package daemons in pkg_scripts; either
// marks the service enabled. A missing rc.conf.local means nothing is
// enabled yet.
func (r *Rcctl) Enabled(_ context.Context, service string) (bool, error) {
	if !r.fs.Exists(r.rcConfPath) {
		return false, nil
	}

	data, err := r.fs.ReadFile(r.rcConfPath)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", r.rcConfPath, err)
	}

	// rc.conf.local is section-less key=value shell assignments.
	f, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, data)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", r.rcConfPath, err)
	}

	section := f.Section(ini.DefaultSection)
	if section.HasKey(service + "_flags") {
		return true, nil
	}
	if section.HasKey("pkg_scripts") {
		for _, name := range strings.Fields(section.Key("pkg_scripts").String()) {
			if name == service {
				return true, nil
			}
		}
	}
	return false, nil
}

// Enable enables a service. Enabling an already-enabled service is a no-op.
func (r *Rcctl) Enable(ctx context.Context, service string) error {
	result, err := r.runner.Run(ctx, "rcctl", "enable", service)
	if err != nil {
		return fmt.Errorf("rcctl enable %s: %w", service, err)
	}
	if !result.Success() {
		return fmt.Errorf("rcctl enable %s failed: %s", service, result.Stderr)
	}
	return nil
}

// Start starts a service.
func (r *Rcctl) Start(ctx context.Context, service string) error {
	result, err := r.runner.Run(ctx, "rcctl", "start", service)
	if err != nil {
		return fmt.Errorf("rcctl start %s: %w", service, err)
	}
	if !result.Success() {
		return fmt.Errorf("rcctl start %s failed: %s", service, result.Stderr)
	}
	return nil
}

// Ensure Rcctl implements ServiceManager.
var _ ServiceManager = (*Rcctl)(nil)
