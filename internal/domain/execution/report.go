package execution

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Report is the final summary of one hardening run.
type Report struct {
	runID      string
	hostname   string
	startedAt  time.Time
	finishedAt time.Time
	results    []Result
}

// NewReport creates a Report with a fresh run ID.
func NewReport(hostname string, startedAt, finishedAt time.Time, results []Result) Report {
	rs := make([]Result, len(results))
	copy(rs, results)
	return Report{
		runID:      uuid.NewString(),
		hostname:   hostname,
		startedAt:  startedAt,
		finishedAt: finishedAt,
		results:    rs,
	}
}

// RunID returns the unique identifier of this run.
func (r Report) RunID() string {
	return r.runID
}

// Hostname returns the host the run mutated.
func (r Report) Hostname() string {
	return r.hostname
}

// Results returns the ordered per-step results.
func (r Report) Results() []Result {
	rs := make([]Result, len(r.results))
	copy(rs, r.results)
	return rs
}

// Counts returns how many steps ended in each outcome.
func (r Report) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, res := range r.results {
		counts[res.Outcome()]++
	}
	return counts
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	appliedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	declinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func outcomeStyle(o Outcome) lipgloss.Style {
	switch o {
	case OutcomeApplied:
		return appliedStyle
	case OutcomeSkipped:
		return skippedStyle
	case OutcomeDeclined:
		return declinedStyle
	case OutcomeFailed:
		return failedStyle
	}
	return lipgloss.NewStyle()
}

// Render returns the human-readable summary printed at the end of a run.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hardening summary") + "\n")
	for _, res := range r.results {
		label := outcomeStyle(res.Outcome()).Render(fmt.Sprintf("%-8s", res.Outcome()))
		line := fmt.Sprintf("  %s %s", label, res.StepID())
		if res.Error() != nil {
			line += fmt.Sprintf("  (%v)", res.Error())
		}
		b.WriteString(line + "\n")
	}

	counts := r.Counts()
	b.WriteString(fmt.Sprintf(
		"%d applied, %d skipped, %d declined, %d failed\n",
		counts[OutcomeApplied], counts[OutcomeSkipped],
		counts[OutcomeDeclined], counts[OutcomeFailed],
	))

	return b.String()
}

// ReportDTO is the serialized form of a Report.
type ReportDTO struct {
	RunID      string         `yaml:"run_id"`
	Hostname   string         `yaml:"hostname"`
	StartedAt  time.Time      `yaml:"started_at"`
	FinishedAt time.Time      `yaml:"finished_at"`
	Steps      []ResultDTO    `yaml:"steps"`
	Counts     map[string]int `yaml:"counts"`
}

// ResultDTO is the serialized form of one step's Result.
type ResultDTO struct {
	Step     string `yaml:"step"`
	Outcome  string `yaml:"outcome"`
	Error    string `yaml:"error,omitempty"`
	Duration string `yaml:"duration,omitempty"`
}

// ToDTO converts the Report for persistence.
func (r Report) ToDTO() ReportDTO {
	steps := make([]ResultDTO, 0, len(r.results))
	for _, res := range r.results {
		dto := ResultDTO{
			Step:    res.StepID().String(),
			Outcome: res.Outcome().String(),
		}
		if res.Error() != nil {
			dto.Error = res.Error().Error()
		}
		if res.Duration() > 0 {
			dto.Duration = res.Duration().String()
		}
		steps = append(steps, dto)
	}

	counts := make(map[string]int)
	for outcome, n := range r.Counts() {
		counts[outcome.String()] = n
	}

	return ReportDTO{
		RunID:      r.runID,
		Hostname:   r.hostname,
		StartedAt:  r.startedAt,
		FinishedAt: r.finishedAt,
		Steps:      steps,
		Counts:     counts,
	}
}
