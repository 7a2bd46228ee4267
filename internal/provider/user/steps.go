package user

import (
	"fmt"
	"strings"

	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// GroupPath is the system group database.
const GroupPath = "/etc/group"

// AdminGroup is the group that grants administrative privilege.
const AdminGroup = "wheel"

// DeprivilegeStep removes the target user from the wheel group by editing
// the group database, with a backup of the pre-edit file.
type DeprivilegeStep struct {
	id        step.StepID
	fs        ports.FileSystem
	mut       *fileedit.Mutator
	groupPath string
}

// NewDeprivilegeStep creates a new DeprivilegeStep.
func NewDeprivilegeStep(fs ports.FileSystem, mut *fileedit.Mutator) *DeprivilegeStep {
	return &DeprivilegeStep{
		id:        step.MustNewStepID("user:deprivilege"),
		fs:        fs,
		mut:       mut,
		groupPath: GroupPath,
	}
}

// WithGroupPath overrides the group database location.
func (s *DeprivilegeStep) WithGroupPath(path string) *DeprivilegeStep {
	clone := *s
	clone.groupPath = path
	return &clone
}

// ID returns the step identifier.
func (s *DeprivilegeStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *DeprivilegeStep) Prompt() string {
	return fmt.Sprintf("Remove the target user from the %s group?", AdminGroup)
}

// Check reports satisfied when the user is already absent from the group.
// A missing group database or group line counts as absent.
func (s *DeprivilegeStep) Check(ctx step.RunContext) (step.Status, error) {
	if !s.fs.Exists(s.groupPath) {
		return step.StatusSatisfied, nil
	}

	data, err := s.fs.ReadFile(s.groupPath)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.groupPath, err)
	}

	if groupHasMember(string(data), AdminGroup, ctx.Username()) {
		return step.StatusNeedsApply, nil
	}
	return step.StatusSatisfied, nil
}

// Apply rewrites the group database without the user in the wheel line.
func (s *DeprivilegeStep) Apply(ctx step.RunContext) error {
	username := ctx.Username()
	if username == "" {
		return fmt.Errorf("no target user selected")
	}

	_, err := s.mut.Transform(s.groupPath, 0o644, func(old string) string {
		return removeGroupMember(old, AdminGroup, username)
	})
	return err
}

// Explain provides a human-readable explanation.
func (s *DeprivilegeStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Deprivilege user",
		fmt.Sprintf("Removes the chosen account from %s so it can no longer escalate to root.", AdminGroup),
	)
}

// groupHasMember reports whether user is an exact member of group in
// group(5) content.
func groupHasMember(content, group, user string) bool {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 4 || fields[0] != group {
			continue
		}
		for _, member := range strings.Split(fields[3], ",") {
			if member == user {
				return true
			}
		}
	}
	return false
}

// removeGroupMember returns content with user removed from group's member
// list. Lines other than the group's are untouched.
func removeGroupMember(content, group, user string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		fields := strings.Split(line, ":")
		if len(fields) < 4 || fields[0] != group {
			continue
		}

		members := strings.Split(fields[3], ",")
		kept := make([]string, 0, len(members))
		for _, member := range members {
			if member != user && member != "" {
				kept = append(kept, member)
			}
		}
		fields[3] = strings.Join(kept, ",")
		lines[i] = strings.Join(fields, ":")
	}
	return strings.Join(lines, "\n")
}

// Ensure DeprivilegeStep implements step.Step.
var _ step.Step = (*DeprivilegeStep)(nil)
