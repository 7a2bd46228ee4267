package pf

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// ConfPath is the pf ruleset file.
const ConfPath = "/etc/pf.conf"

// RulesetStep replaces the pf ruleset with the canonical template and
// reloads the firewall. The previous ruleset is backed up first. The
// overwrite is inherently safe to reapply: writing identical content is
// not an error.
type RulesetStep struct {
	id       step.StepID
	fs       ports.FileSystem
	mut      *fileedit.Mutator
	firewall collab.Firewall
	path     string
	ruleset  string
}

// NewRulesetStep creates a new RulesetStep.
func NewRulesetStep(fs ports.FileSystem, mut *fileedit.Mutator, firewall collab.Firewall) *RulesetStep {
	return &RulesetStep{
		id:       step.MustNewStepID("pf:ruleset"),
		fs:       fs,
		mut:      mut,
		firewall: firewall,
		path:     ConfPath,
		ruleset:  Ruleset,
	}
}

// WithPath overrides the ruleset location.
func (s *RulesetStep) WithPath(path string) *RulesetStep {
	clone := *s
	clone.path = path
	return &clone
}

// ID returns the step identifier.
func (s *RulesetStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *RulesetStep) Prompt() string {
	return "Replace the firewall ruleset with the deny-by-default template and reload pf?"
}

// Check compares the current ruleset to the template byte-for-byte.
func (s *RulesetStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.path) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if string(data) == s.ruleset {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply backs up and replaces the ruleset, validates it, then reloads pf.
func (s *RulesetStep) Apply(ctx step.RunContext) error {
	if err := s.mut.Replace(s.path, []byte(s.ruleset), 0o600); err != nil {
		return err
	}
	if err := s.firewall.Validate(ctx.Context(), s.path); err != nil {
		return err
	}
	return s.firewall.Reload(ctx.Context(), s.path)
}

// Explain provides a human-readable explanation.
func (s *RulesetStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Replace firewall ruleset",
		"Installs a deny-by-default pf ruleset: all inbound traffic blocked, outbound stateful. The old ruleset is kept next to it as a backup.",
	)
}

// Ensure RulesetStep implements step.Step.
var _ step.Step = (*RulesetStep)(nil)
