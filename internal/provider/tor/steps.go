package tor

import (
	"fmt"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// ProfilePath is the global login profile the proxy exports go into.
const ProfilePath = "/etc/profile"

// ProxyLines are the environment exports pointing tools at the local tor
// SOCKS listener. Each line is checked and appended individually with
// exact-line matching.
var ProxyLines = []string{
	`export HTTP_PROXY=socks5://127.0.0.1:9050`,
	`export HTTPS_PROXY=socks5://127.0.0.1:9050`,
	`export FTP_PROXY=socks5://127.0.0.1:9050`,
}

// ServiceStep enables and starts the tor daemon.
type ServiceStep struct {
	id       step.StepID
	services collab.ServiceManager
}

// NewServiceStep creates a new ServiceStep.
func NewServiceStep(services collab.ServiceManager) *ServiceStep {
	return &ServiceStep{
		id:       step.MustNewStepID("tor:service"),
		services: services,
	}
}

// ID returns the step identifier.
func (s *ServiceStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *ServiceStep) Prompt() string {
	return "Enable and start the tor daemon?"
}

// Check reports satisfied when tor is already enabled.
func (s *ServiceStep) Check(ctx step.RunContext) (step.Status, error) {
	enabled, err := s.services.Enabled(ctx.Context(), "tor")
	if err != nil {
		return step.StatusUnknown, err
	}
	if enabled {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply enables and starts tor.
func (s *ServiceStep) Apply(ctx step.RunContext) error {
	if err := s.services.Enable(ctx.Context(), "tor"); err != nil {
		return err
	}
	return s.services.Start(ctx.Context(), "tor")
}

// Explain provides a human-readable explanation.
func (s *ServiceStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Enable tor",
		"Enables and starts the tor daemon so a local SOCKS listener is available on 127.0.0.1:9050.",
	)
}

// ProxyEnvStep appends the SOCKS proxy exports to the global login profile.
type ProxyEnvStep struct {
	id          step.StepID
	fs          ports.FileSystem
	mut         *fileedit.Mutator
	profilePath string
}

// NewProxyEnvStep creates a new ProxyEnvStep.
func NewProxyEnvStep(fs ports.FileSystem, mut *fileedit.Mutator) *ProxyEnvStep {
	return &ProxyEnvStep{
		id:          step.MustNewStepID("tor:proxyenv"),
		fs:          fs,
		mut:         mut,
		profilePath: ProfilePath,
	}
}

// WithProfilePath overrides the profile location.
func (s *ProxyEnvStep) WithProfilePath(path string) *ProxyEnvStep {
	clone := *s
	clone.profilePath = path
	return &clone
}

// ID returns the step identifier.
func (s *ProxyEnvStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *ProxyEnvStep) Prompt() string {
	return fmt.Sprintf("Route login sessions through tor by adding proxy exports to %s?", s.profilePath)
}

// Check reports satisfied when every proxy line is already present.
// A missing profile means none of them are.
func (s *ProxyEnvStep) Check(_ step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.profilePath) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.profilePath)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.profilePath, err)
	}
	if len(fileedit.MissingLines(string(data), ProxyLines)) == 0 {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply appends the missing proxy lines, backing the profile up first.
func (s *ProxyEnvStep) Apply(_ step.RunContext) error {
	for _, line := range ProxyLines {
		if _, err := s.mut.AppendLine(s.profilePath, line, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *ProxyEnvStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Proxy environment",
		"Appends HTTP, HTTPS, and FTP proxy exports to the global login profile so command-line tools reach the network through tor.",
	)
}

// Ensure the step types implement step.Step.
var (
	_ step.Step = (*ServiceStep)(nil)
	_ step.Step = (*ProxyEnvStep)(nil)
)
