package periodic

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/config"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

// TablePath is where the generated task table is persisted before being
// handed to the scheduler.
const TablePath = "/var/db/lockdown/crontab"

// AdminUser owns the installed job list.
const AdminUser = "root"

// ScheduleStep renders the named periodic jobs into a crontab table,
// persists it, and installs it as the administrator's job list.
type ScheduleStep struct {
	id        step.StepID
	fs        ports.FileSystem
	mut       *fileedit.Mutator
	scheduler collab.Scheduler
	tablePath string
	jobs      []config.PeriodicJob
}

// NewScheduleStep creates a new ScheduleStep.
func NewScheduleStep(fs ports.FileSystem, mut *fileedit.Mutator, scheduler collab.Scheduler, jobs []config.PeriodicJob) *ScheduleStep {
	return &ScheduleStep{
		id:        step.MustNewStepID("periodic:schedule"),
		fs:        fs,
		mut:       mut,
		scheduler: scheduler,
		tablePath: TablePath,
		jobs:      jobs,
	}
}

// WithTablePath overrides the persisted table location.
func (s *ScheduleStep) WithTablePath(path string) *ScheduleStep {
	clone := *s
	clone.tablePath = path
	return &clone
}

// ID returns the step identifier.
func (s *ScheduleStep) ID() step.StepID {
	return s.id
}

// Prompt returns the confirmation question.
func (s *ScheduleStep) Prompt() string {
	return fmt.Sprintf("Schedule %d periodic maintenance jobs in %s's crontab?", len(s.jobs), AdminUser)
}

// RenderTable produces the crontab content for a job list. Schedules must
// be valid five-field cron expressions or descriptors like @daily.
func RenderTable(jobs []config.PeriodicJob) (string, error) {
	var b strings.Builder
	b.WriteString("# periodic tasks installed by lockdown\n")
	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.Schedule); err != nil {
			return "", fmt.Errorf("job %s: invalid schedule %q: %w", job.Name, job.Schedule, err)
		}
		fmt.Fprintf(&b, "# %s\n%s\t%s\n", job.Name, job.Schedule, job.Command)
	}
	return b.String(), nil
}

// Check compares the persisted table with the rendered one.
func (s *ScheduleStep) Check(_ step.RunContext) (step.Status, error) {
	want, err := RenderTable(s.jobs)
	if err != nil {
		return step.StatusUnknown, err
	}
	if !s.fs.Exists(s.tablePath) {
		return step.StatusNeedsApply, nil
	}
	data, err := s.fs.ReadFile(s.tablePath)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("reading %s: %w", s.tablePath, err)
	}
	if string(data) == want {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply persists the rendered table and installs it via the scheduler.
func (s *ScheduleStep) Apply(ctx step.RunContext) error {
	table, err := RenderTable(s.jobs)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.tablePath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.tablePath), err)
	}
	if err := s.mut.Replace(s.tablePath, []byte(table), 0o600); err != nil {
		return err
	}
	return s.scheduler.InstallCrontab(ctx.Context(), AdminUser, s.tablePath)
}

// Explain provides a human-readable explanation.
func (s *ScheduleStep) Explain() step.Explanation {
	return step.NewExplanation(
		"Schedule periodic tasks",
		"Generates the maintenance job table (antivirus scan, signature updates, patch check) and installs it as root's crontab.",
	)
}

// Ensure ScheduleStep implements step.Step.
var _ step.Step = (*ScheduleStep)(nil)
