// Package collab defines narrow interfaces for the external systems the
// hardening steps command: the package manager, service supervisor,
// firewall, scheduler, and file flag store. Steps depend on these
// interfaces only, so tests can substitute fakes without touching the host.
package collab

import (
	"context"
	"fmt"

	"github.com/puffsec/lockdown/internal/ports"
)

// PackageManager queries and installs packages.
type PackageManager interface {
	Installed(ctx context.Context, name string) (bool, error)
	Install(ctx context.Context, name string) error
}

// PkgTools drives the OpenBSD package tools (pkg_info, pkg_add).
type PkgTools struct {
	runner ports.CommandRunner
}

// NewPkgTools creates a PkgTools on the given runner.
func NewPkgTools(runner ports.CommandRunner) *PkgTools {
	return &PkgTools{runner: runner}
}

// Installed reports whether a package is registered as installed.
// An absent package is a normal false answer, not an error.
func (p *PkgTools) Installed(ctx context.Context, name string) (bool, error) {
	result, err := p.runner.Run(ctx, "pkg_info", "-e", name)
	if err != nil {
		return false, fmt.Errorf("pkg_info -e %s: %w", name, err)
	}
	return result.Success(), nil
}

// Install installs a package.
func (p *PkgTools) Install(ctx context.Context, name string) error {
	result, err := p.runner.Run(ctx, "pkg_add", name)
	if err != nil {
		return fmt.Errorf("pkg_add %s: %w", name, err)
	}
	if !result.Success() {
		return fmt.Errorf("pkg_add %s failed: %s", name, result.Stderr)
	}
	return nil
}

// Ensure PkgTools implements PackageManager.
var _ PackageManager = (*PkgTools)(nil)
