package xenodm

import (
	"fmt"
	"path/filepath"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// XsetupPath is the script xenodm runs before showing the login box.
const XsetupPath = "/etc/X11/xenodm/Xsetup_0"

// HomeRoot is where user home directories live.
const HomeRoot = "/home"

// ServiceName is the display manager service.
const ServiceName = "xenodm"

// XsetupTemplate replaces the stock Xsetup_0. The stock script starts a
// root-owned xconsole on the greeter; the replacement keeps the greeter
// bare.
const XsetupTemplate = `#!/bin/sh
# installed by lockdown
# intentionally empty: no xconsole on the login screen
`

// SetupStep enables the display manager, strips the greeter setup script,
// and wires the target user's X session to the configured window manager.
type SetupStep struct {
	id         step.StepID
	fs         ports.FileSystem
	mut        *fileedit.Mutator
	services   collab.ServiceManager
	xsetupPath string
	homeRoot   string
	wm         string
}

// NewSetupStep creates a new SetupStep.
func NewSetupStep(fs ports.FileSystem, mut *fileedit.Mutator, services collab.ServiceManager, wm string) *SetupStep {
	return &SetupStep{
		id:         step.MustNewStepID("xenodm:setup"),
		fs:         fs,
		mut:        mut,
		services:   services,
		xsetupPath: XsetupPath,
		homeRoot:   HomeRoot,
		wm:         wm,
	}
}

// WithXsetupPath overrides the greeter setup script location.
func (s *SetupStep) WithXsetupPath(path string) *SetupStep {
	clone := *s
	clone.xsetupPath = path
	return &clone
}

// WithHomeRoot overrides the home directory root.
func (s *SetupStep) WithHomeRoot(root string) *SetupStep {
	clone := *s
	clone.homeRoot = root
	return &clone
}

// ID returns the step identifier.
func (s *SetupStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *SetupStep) Prompt() string {
	return fmt.Sprintf("Enable the xenodm display manager and start %s from the user session?", s.wm)
}

// execLine is the exact line appended to the user's ~/.xsession.
func (s *SetupStep) execLine() string {
	return "exec " + s.wm
}

func (s *SetupStep) xsessionPath(username string) string {
	return filepath.Join(s.homeRoot, username, ".xsession")
}

// Check reports satisfied only when the service is enabled, the greeter
// script matches the template, and the session file holds the exec line.
func (s *SetupStep) Check(ctx step.RunContext) (step.Status, error) {
	enabled, err := s.services.Enabled(ctx.Context(), ServiceName)
	if err != nil {
		return step.StatusUnknown, err
	}
	if !enabled {
		return step.StatusNeedsApply, nil
	}

	if !s.fs.Exists(s.xsetupPath) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.xsetupPath)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.xsetupPath, err)
	}
	if string(data) != XsetupTemplate {
		return step.StatusNeedsApply, nil
	}

	if ctx.Username() == "" {
		return step.StatusNeedsApply, nil
	}
	xsession := s.xsessionPath(ctx.Username())
	if !s.fs.Exists(xsession) {
		return step.StatusNeedsApply, nil
	}
	session, err := s.fs.ReadFile(xsession)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", xsession, err)
	}
	if fileedit.HasLine(string(session), s.execLine()) {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply enables and starts the service, installs the greeter template
// (backup first), and appends the exec line to the user's session file.
func (s *SetupStep) Apply(ctx step.RunContext) error {
	if ctx.Username() == "" {
		return fmt.Errorf("no target user to configure the X session for")
	}

	if err := s.services.Enable(ctx.Context(), ServiceName); err != nil {
		return err
	}
	if err := s.services.Start(ctx.Context(), ServiceName); err != nil {
		return err
	}

	if err := s.mut.Replace(s.xsetupPath, []byte(XsetupTemplate), 0o755); err != nil {
		return err
	}

	if _, err := s.mut.AppendLine(s.xsessionPath(ctx.Username()), s.execLine(), 0o644); err != nil {
		return err
	}
	return nil
}

// Explain provides a human-readable explanation.
func (s *SetupStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Display manager setup",
		"Enables xenodm, removes the root xconsole from the greeter, and starts the window manager from the target user's session.",
	)
}

// Ensure SetupStep implements step.Step.
var _ step.Step = (*SetupStep)(nil)
