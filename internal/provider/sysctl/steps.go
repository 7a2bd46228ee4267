package sysctl

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// ConfPath is the boot-time kernel tunable file.
const ConfPath = "/etc/sysctl.conf"

// TuneStep appends the configured kernel tunables to sysctl.conf and
// applies each of them live. Lines are matched exactly, so a commented or
// differently-valued tunable still gets the hardened line appended.
type TuneStep struct {
	id       step.StepID
	fs       ports.FileSystem
	mut      *fileedit.Mutator
	runner   ports.CommandRunner
	path     string
	settings []string
}

// NewTuneStep creates a new TuneStep.
func NewTuneStep(fs ports.FileSystem, mut *fileedit.Mutator, runner ports.CommandRunner, settings []string) *TuneStep {
	return &TuneStep{
		id:       step.MustNewStepID("sysctl:tune"),
		fs:       fs,
		mut:      mut,
		runner:   runner,
		path:     ConfPath,
		settings: settings,
	}
}

// WithPath overrides the sysctl.conf location.
func (s *TuneStep) WithPath(path string) *TuneStep {
	clone := *s
	clone.path = path
	return &clone
}

// ID returns the step identifier.
func (s *TuneStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *TuneStep) Prompt() string {
	return fmt.Sprintf("Apply %d hardened kernel tunables?", len(s.settings))
}

// Check reports satisfied when every tunable line is present.
func (s *TuneStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.path) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(fileedit.MissingLines(string(data), s.settings)) == 0 {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply appends the missing tunables (backup first) and sets each one
// live so a reboot is not required.
func (s *TuneStep) Apply(ctx step.RunContext) error {
	for _, setting := range s.settings {
		if _, err := s.mut.AppendLine(s.path, setting, 0o644); err != nil {
			return err
		}
	}

	for _, setting := range s.settings {
		result, err := s.runner.Run(ctx.Context(), "sysctl", setting)
		if err != nil {
			return fmt.Errorf("sysctl %s: %w", setting, err)
		}
		if !result.Success() {
			return fmt.Errorf("sysctl %s failed: %s", setting, result.Stderr)
		}
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *TuneStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Kernel tunables",
		"Appends the hardened tunables to sysctl.conf for boot and applies them to the running kernel.",
	)
}

// Ensure TuneStep implements step.Step.
var _ step.Step = (*TuneStep)(nil)
