package antivirus

import (
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
)

// services the antivirus step manages: the scanner daemon and the
// signature updater.
var services = []string{"clamd", "freshclam"}

// ServiceStep enables and starts the ClamAV daemons.
type ServiceStep struct {
	id       step.StepID
	services collab.ServiceManager
}

// NewServiceStep creates a new ServiceStep.
func NewServiceStep(svc collab.ServiceManager) *ServiceStep {
	return &ServiceStep{
		id:       step.MustNewStepID("antivirus:service"),
		services: svc,
	}
}

// ID returns the step identifier.
func (s *ServiceStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *ServiceStep) Prompt() string {
	return "Enable and start the ClamAV scanner and signature updater?"
}

// Check reports satisfied when both daemons are already enabled.
func (s *ServiceStep) Check(ctx step.RunContext) (step.Status, error) {
	for _, name := range services {
		enabled, err := s.services.Enabled(ctx.Context(), name)
		if err != nil {
			return step.StatusUnknown, err
		}
		if !enabled {
			return step.StatusNeedsApply, nil
		}
	}
	return step.StatusSatisfied, nil
}

// Apply enables and starts both daemons. Enabling an already-enabled
// daemon is a no-op for the supervisor.
func (s *ServiceStep) Apply(ctx step.RunContext) error {
	for _, name := range services {
		if err := s.services.Enable(ctx.Context(), name); err != nil {
			return err
		}
		if err := s.services.Start(ctx.Context(), name); err != nil {
			return err
		}
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *ServiceStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Enable antivirus",
		"Enables and starts clamd and freshclam. The scanner itself is scheduled by the periodic task step.",
	)
}

// Ensure ServiceStep implements step.Step.
var _ step.Step = (*ServiceStep)(nil)
