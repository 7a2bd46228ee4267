package pkg

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// InstallStep installs one package via the package manager.
type InstallStep struct {
	name string
	id   step.StepID
	mgr  collab.PackageManager
}

// NewInstallStep creates a new InstallStep.
func NewInstallStep(name string, mgr collab.PackageManager) *InstallStep {
	return &InstallStep{
		name: name,
		id:   step.MustNewStepID("pkg:install:" + name),
		mgr:  mgr,
	}
}

// ID returns the step identifier.
func (s *InstallStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *InstallStep) Prompt() string {
	return fmt.Sprintf("Install package %s?", s.name)
}

// Check determines if the package is already installed.
func (s *InstallStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.mgr.Installed(ctx.Context(), s.name)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply installs the package. A failed install fails this step only.
func (s *InstallStep) Apply(ctx step.RunContext) error {
	return s.mgr.Install(ctx.Context(), s.name)
}

// Explain provides a human-readable explanation.
func (s *InstallStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Install package",
		fmt.Sprintf("Installs the %s package. Later steps assume it is present.", s.name),
	)
}

// Ensure InstallStep implements step.Step.
var _ step.Step = (*InstallStep)(nil)
