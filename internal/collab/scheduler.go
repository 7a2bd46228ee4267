package collab

import (
	"context"
	"fmt"

	"github.com/puffsec/lockdown/internal/ports"
)

// Scheduler installs a generated task table as an administrator's job list.
type Scheduler interface {
	InstallCrontab(ctx context.Context, user, path string) error
}

// Crontab drives crontab(1).
type Crontab struct {
	runner ports.CommandRunner
}

// NewCrontab creates a Crontab on the given runner.
func NewCrontab(runner ports.CommandRunner) *Crontab {
	return &Crontab{runner: runner}
}

// InstallCrontab replaces user's crontab with the table at path.
func (c *Crontab) InstallCrontab(ctx context.Context, user, path string) error {
	result, err := c.runner.Run(ctx, "crontab", "-u", user, path)
	if err != nil {
		return fmt.Errorf("crontab -u %s %s: %w", user, path, err)
	}
	if !result.Success() {
		return fmt.Errorf("installing crontab for %s failed: %s", user, result.Stderr)
	}
	return nil
}

// Ensure Crontab implements Scheduler.
var _ Scheduler = (*Crontab)(nil)
