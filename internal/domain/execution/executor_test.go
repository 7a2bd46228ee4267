package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puffsec/lockdown/internal/adapters/logging"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/testutil/mocks"
)

// fakeStep is a scriptable step for executor tests.
type fakeStep struct {
	id       step.StepID
	status   step.Status
	checkErr error
	applyErr error
	applied  bool
}

func newFakeStep(id string, status step.Status) *fakeStep {
	return &fakeStep{id: step.MustNewStepID(id), status: status}
}

func (f *fakeStep) ID() step.StepID { return f.id }

func (f *fakeStep) Prompt() string { return "Apply " + f.id.String() + "?" }

func (f *fakeStep) Check(step.RunContext) (step.Status, error) {
	return f.status, f.checkErr
}

func (f *fakeStep) Apply(step.RunContext) error {
	f.applied = true
	return f.applyErr
}

func (f *fakeStep) Explain() step.Explanation {
	return step.NewExplanation("fake", "fake step for tests")
}

// errPrompter fails every prompt, simulating a closed terminal.
type errPrompter struct{}

func (errPrompter) Confirm(string) (bool, error) { return false, errors.New("terminal gone") }
func (errPrompter) Ask(string) (string, error)   { return "", errors.New("terminal gone") }

func runCtx() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestExecutor_Run_SkipsSatisfiedWithoutPrompt(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter()
	executor := NewExecutor(prompter, logging.NewNopLogger())
	s := newFakeStep("pf:ruleset", step.StatusSatisfied)

	results := executor.Run(runCtx(), []step.Step{s})

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeSkipped, results[0].Outcome())
	assert.False(t, s.applied)
	assert.Empty(t, prompter.Questions)
}

func TestExecutor_Run_AppliesOnConfirmation(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(true)
	executor := NewExecutor(prompter, logging.NewNopLogger())
	s := newFakeStep("usb:disable", step.StatusNeedsApply)

	results := executor.Run(runCtx(), []step.Step{s})

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeApplied, results[0].Outcome())
	assert.True(t, s.applied)
	assert.Equal(t, []string{"Apply usb:disable?"}, prompter.Questions)
}

func TestExecutor_Run_RecordsDecline(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(false)
	executor := NewExecutor(prompter, logging.NewNopLogger())
	s := newFakeStep("usb:disable", step.StatusNeedsApply)

	results := executor.Run(runCtx(), []step.Step{s})

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeDeclined, results[0].Outcome())
	require.NoError(t, results[0].Error())
	assert.False(t, s.applied)
}

func TestExecutor_Run_FailedStepDoesNotStopRun(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(true, true)
	executor := NewExecutor(prompter, logging.NewNopLogger())

	failing := newFakeStep("pkg:install:tor", step.StatusNeedsApply)
	failing.applyErr = errors.New("mirror unreachable")
	next := newFakeStep("pf:ruleset", step.StatusNeedsApply)

	results := executor.Run(runCtx(), []step.Step{failing, next})

	require.Len(t, results, 2)
	assert.Equal(t, OutcomeFailed, results[0].Outcome())
	assert.ErrorContains(t, results[0].Error(), "mirror unreachable")
	assert.Equal(t, OutcomeApplied, results[1].Outcome())
	assert.True(t, next.applied)
}

func TestExecutor_Run_DeclinedStepDoesNotAffectLaterSteps(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(false, true)
	executor := NewExecutor(prompter, logging.NewNopLogger())

	declined := newFakeStep("user:deprivilege", step.StatusNeedsApply)
	next := newFakeStep("mirror:installurl", step.StatusNeedsApply)

	results := executor.Run(runCtx(), []step.Step{declined, next})

	require.Len(t, results, 2)
	assert.Equal(t, OutcomeDeclined, results[0].Outcome())
	assert.Equal(t, OutcomeApplied, results[1].Outcome())
}

func TestExecutor_Run_ProbeErrorStillPrompts(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(true)
	executor := NewExecutor(prompter, logging.NewNopLogger())

	s := newFakeStep("tor:service", step.StatusUnknown)
	s.checkErr = errors.New("rc.conf.local unreadable")

	results := executor.Run(runCtx(), []step.Step{s})

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeApplied, results[0].Outcome())
	assert.True(t, s.applied)
	assert.Len(t, prompter.Questions, 1)
}

func TestExecutor_Run_PromptErrorEndsRun(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(errPrompter{}, logging.NewNopLogger())

	first := newFakeStep("usb:disable", step.StatusNeedsApply)
	second := newFakeStep("pf:ruleset", step.StatusNeedsApply)

	results := executor.Run(runCtx(), []step.Step{first, second})

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeDeclined, results[0].Outcome())
	assert.Error(t, results[0].Error())
	assert.False(t, second.applied)
}

func TestExecutor_Run_CancelledContextStopsBetweenSteps(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(true, true)
	executor := NewExecutor(prompter, logging.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newFakeStep("usb:disable", step.StatusNeedsApply)
	results := executor.Run(step.NewRunContext(ctx), []step.Step{s})

	assert.Empty(t, results)
	assert.False(t, s.applied)
}

func TestExecutor_Run_EveryStepGetsExactlyOneResult(t *testing.T) {
	t.Parallel()

	prompter := mocks.NewPrompter(true, false, true)
	executor := NewExecutor(prompter, logging.NewNopLogger())

	steps := []step.Step{
		newFakeStep("pkg:install:tor", step.StatusSatisfied),
		newFakeStep("user:deprivilege", step.StatusNeedsApply),
		newFakeStep("pf:ruleset", step.StatusNeedsApply),
		newFakeStep("mirror:installurl", step.StatusNeedsApply),
	}

	results := executor.Run(runCtx(), steps)

	require.Len(t, results, len(steps))
	for i, s := range steps {
		assert.True(t, results[i].StepID().Equals(s.ID()))
	}
}
