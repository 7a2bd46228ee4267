package firmware

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// HostsPath is the static host table.
const HostsPath = "/etc/hosts"

// BlockStep suppresses firmware downloads by mapping the firmware host to a
// loopback address in the hosts file. One exact line is appended; a line
// that merely contains the hostname does not count as applied.
type BlockStep struct {
	id        step.StepID
	fs        ports.FileSystem
	mut       *fileedit.Mutator
	hostsPath string
	host      string
	redirect  string
}

// NewBlockStep creates a new BlockStep.
func NewBlockStep(fs ports.FileSystem, mut *fileedit.Mutator, host, redirect string) *BlockStep {
	return &BlockStep{
		id:        step.MustNewStepID("firmware:block"),
		fs:        fs,
		mut:       mut,
		hostsPath: HostsPath,
		host:      host,
		redirect:  redirect,
	}
}

// WithHostsPath overrides the hosts file location.
func (s *BlockStep) WithHostsPath(path string) *BlockStep {
	clone := *s
	clone.hostsPath = path
	return &clone
}

// ID returns the step identifier.
func (s *BlockStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *BlockStep) Prompt() string {
	return fmt.Sprintf("Block firmware downloads from %s?", s.host)
}

// Line returns the exact hosts line this step maintains.
func (s *BlockStep) Line() string {
	return s.redirect + " " + s.host
}

// Check reports satisfied when the exact block line is present.
func (s *BlockStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.hostsPath) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.hostsPath)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.hostsPath, err)
	}
	if fileedit.HasLine(string(data), s.Line()) {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply appends the block line, backing the hosts file up first.
func (s *BlockStep) Apply(_ step.RunContext) error {
	_, err := s.mut.AppendLine(s.hostsPath, s.Line(), 0o644)
	return err
}

// Explain provides a human-readable explanation.
func (s *BlockStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Suppress firmware updates",
		fmt.Sprintf("Maps %s to %s in the hosts file so the firmware updater cannot reach it.", s.host, s.redirect),
	)
}

// Ensure BlockStep implements step.Step.
var _ step.Step = (*BlockStep)(nil)
