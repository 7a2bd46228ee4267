package mirror

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// InstallURLPath is the system-wide update source pointer.
const InstallURLPath = "/etc/installurl"

// InstallURLStep points the package and release tools at the configured
// mirror by rewriting /etc/installurl to exactly one line.
type InstallURLStep struct {
	id   step.StepID
	fs   ports.FileSystem
	mut  *fileedit.Mutator
	path string
	url  string
}

// NewInstallURLStep creates a new InstallURLStep.
func NewInstallURLStep(fs ports.FileSystem, mut *fileedit.Mutator, url string) *InstallURLStep {
	return &InstallURLStep{
		id:   step.MustNewStepID("mirror:installurl"),
		fs:   fs,
		mut:  mut,
		path: InstallURLPath,
		url:  url,
	}
}

// WithPath overrides the installurl location.
func (s *InstallURLStep) WithPath(path string) *InstallURLStep {
	clone := *s
	clone.path = path
	return &clone
}

// ID returns the step identifier.
func (s *InstallURLStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *InstallURLStep) Prompt() string {
	return fmt.Sprintf("Point the update source at %s?", s.url)
}

// content is the full desired file: the URL and nothing else.
func (s *InstallURLStep) content() string {
	return s.url + "\n"
}

// Check compares the file content to the single expected line.
func (s *InstallURLStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.path) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if string(data) == s.content() {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply backs up and rewrites the update source pointer.
func (s *InstallURLStep) Apply(_ step.RunContext) error {
	return s.mut.Replace(s.path, []byte(s.content()), 0o644)
}

// Explain provides a human-readable explanation.
func (s *InstallURLStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Redirect update source",
		fmt.Sprintf("Rewrites %s so packages and sets are fetched from %s.", s.path, s.url),
	)
}

// Ensure InstallURLStep implements step.Step.
var _ step.Step = (*InstallURLStep)(nil)
