package usb

import (
	"fmt"
	"strings"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// ReConfigPath holds config(8) directives applied to the kernel at boot.
const ReConfigPath = "/etc/bsd.re-config"

// DisableStep writes "disable <driver>" directives for the USB controller
// drivers so the kernel ignores attached USB devices after the next boot.
type DisableStep struct {
	id      step.StepID
	fs      ports.FileSystem
	mut     *fileedit.Mutator
	path    string
	drivers []string
}

// NewDisableStep creates a new DisableStep.
func NewDisableStep(fs ports.FileSystem, mut *fileedit.Mutator, drivers []string) *DisableStep {
	return &DisableStep{
		id:      step.MustNewStepID("usb:disable"),
		fs:      fs,
		mut:     mut,
		path:    ReConfigPath,
		drivers: drivers,
	}
}

// WithPath overrides the directive file location.
func (s *DisableStep) WithPath(path string) *DisableStep {
	clone := *s
	clone.path = path
	return &clone
}

// ID returns the step identifier.
func (s *DisableStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *DisableStep) Prompt() string {
	return fmt.Sprintf("Disable USB at the kernel level (%s)?", strings.Join(s.drivers, ", "))
}

// lines returns the exact directive lines this step maintains.
func (s *DisableStep) lines() []string {
	lines := make([]string, 0, len(s.drivers))
	for _, driver := range s.drivers {
		lines = append(lines, "disable "+driver)
	}
	return lines
}

// Check reports satisfied when every directive line is present.
func (s *DisableStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.path) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(fileedit.MissingLines(string(data), s.lines())) == 0 {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply appends the missing directives, backing the file up first.
func (s *DisableStep) Apply(_ step.RunContext) error {
	for _, line := range s.lines() {
		if _, err := s.mut.AppendLine(s.path, line, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *DisableStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Disable USB",
		"Writes disable directives for the USB controller drivers to the kernel re-config file. Takes effect on the next boot.",
	)
}

// Ensure DisableStep implements step.Step.
var _ step.Step = (*DisableStep)(nil)
