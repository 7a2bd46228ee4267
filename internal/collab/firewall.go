package collab

import (
	"context"
	"fmt"

	"github.com/puffsec/lockdown/internal/ports"
)

// Firewall validates and loads rulesets. Rule syntax is the firewall
// engine's business; the core only hands it files.
type Firewall interface {
	Validate(ctx context.Context, path string) error
	Reload(ctx context.Context, path string) error
}

// Pfctl drives pf through pfctl.
type Pfctl struct {
	runner ports.CommandRunner
}

// NewPfctl creates a Pfctl on the given runner.
func NewPfctl(runner ports.CommandRunner) *Pfctl {
	return &Pfctl{runner: runner}
}

// Validate parses the ruleset without loading it.
func (p *Pfctl) Validate(ctx context.Context, path string) error {
	result, err := p.runner.Run(ctx, "pfctl", "-n", "-f", path)
	if err != nil {
		return fmt.Errorf("pfctl -n -f %s: %w", path, err)
	}
	if !result.Success() {
		return fmt.Errorf("pf ruleset %s invalid: %s", path, result.Stderr)
	}
	return nil
}

// Reload loads the ruleset into pf.
func (p *Pfctl) Reload(ctx context.Context, path string) error {
	result, err := p.runner.Run(ctx, "pfctl", "-f", path)
	if err != nil {
		return fmt.Errorf("pfctl -f %s: %w", path, err)
	}
	if !result.Success() {
		return fmt.Errorf("pf reload from %s failed: %s", path, result.Stderr)
	}
	return nil
}

// Ensure Pfctl implements Firewall.
var _ Firewall = (*Pfctl)(nil)
