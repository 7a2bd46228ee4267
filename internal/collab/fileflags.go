package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/puffsec/lockdown/internal/ports"
)

// FileFlags sets and inspects file system flags. Setting the immutable flag
// is irreversible without separate administrative action (securelevel drop),
// which this tool does not provide.
type FileFlags interface {
	IsImmutable(ctx context.Context, path string) (bool, error)
	SetImmutable(ctx context.Context, path string) error
}

// Chflags drives chflags(1) and reads flags back via ls -ldo.
type Chflags struct {
	runner ports.CommandRunner
}

// NewChflags creates a Chflags on the given runner.
func NewChflags(runner ports.CommandRunner) *Chflags {
	return &Chflags{runner: runner}
}

// IsImmutable reports whether path carries the schg flag.
// A missing file is a normal false answer.
func (c *Chflags) IsImmutable(ctx context.Context, path string) (bool, error) {
	result, err := c.runner.Run(ctx, "ls", "-ldo", path)
	if err != nil {
		return false, fmt.Errorf("ls -ldo %s: %w", path, err)
	}
	if !result.Success() {
		return false, nil
	}

	// ls -ldo: mode links owner group flags size ... The flags field is a
	// comma-separated list, "-" when none are set.
	fields := strings.Fields(result.Stdout)
	if len(fields) < 5 {
		return false, nil
	}
	for _, flag := range strings.Split(fields[4], ",") {
		if flag == "schg" {
			return true, nil
		}
	}
	return false, nil
}

// SetImmutable sets the schg flag on path.
func (c *Chflags) SetImmutable(ctx context.Context, path string) error {
	result, err := c.runner.Run(ctx, "chflags", "schg", path)
	if err != nil {
		return fmt.Errorf("chflags schg %s: %w", path, err)
	}
	if !result.Success() {
		return fmt.Errorf("chflags schg %s failed: %s", path, result.Stderr)
	}
	return nil
}

// Ensure Chflags implements FileFlags.
var _ FileFlags = (*Chflags)(nil)
