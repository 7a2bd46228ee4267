package malloc

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// ConfPath is the malloc options symlink.
const ConfPath = "/etc/malloc.conf"

// Option is the malloc flag enabled: S turns on all allocator security
// options (guard pages, canaries, free junking).
const Option = "S"

// HardenStep points the malloc.conf symlink at the security option.
type HardenStep struct {
	id   step.StepID
	fs   ports.FileSystem
	path string
}

// NewHardenStep creates a new HardenStep.
func NewHardenStep(fs ports.FileSystem) *HardenStep {
	return &HardenStep{
		id:   step.MustNewStepID("malloc:harden"),
		fs:   fs,
		path: ConfPath,
	}
}

// WithPath overrides the malloc.conf location.
func (s *HardenStep) WithPath(path string) *HardenStep {
	clone := *s
	clone.path = path
	return &clone
}

// ID returns the step identifier.
func (s *HardenStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *HardenStep) Prompt() string {
	return "Enable malloc security options for all programs?"
}

// Check reads the symlink target. A missing file or a different target
// means the option is not active.
func (s *HardenStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.path) {
		return step.StatusNeedsApply, nil
	}
	target, err := s.fs.Readlink(s.path)
	if err != nil {
		// A regular file is not the option symlink malloc expects.
		return step.StatusNeedsApply, nil
	}
	if target == Option {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply replaces malloc.conf with a symlink to the option string. A
// pre-existing regular file is backed up before removal; a pre-existing
// symlink carries no content to preserve.
func (s *HardenStep) Apply(_ step.RunContext) error {
	if s.fs.Exists(s.path) {
		if _, err := s.fs.Readlink(s.path); err != nil {
			if err := s.fs.CopyFile(s.path, fileedit.BackupPath(s.path)); err != nil {
				return fmt.Errorf("backing up %s: %w", s.path, err)
			}
		}
		if err := s.fs.Remove(s.path); err != nil {
			return fmt.Errorf("removing %s: %w", s.path, err)
		}
	}
	if err := s.fs.Symlink(Option, s.path); err != nil {
		return fmt.Errorf("linking %s to %s: %w", s.path, Option, err)
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *HardenStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Harden memory allocator",
		fmt.Sprintf("Links %s to %q so every program runs with the allocator's security options.", s.path, Option),
	)
}

// Ensure HardenStep implements step.Step.
var _ step.Step = (*HardenStep)(nil)
