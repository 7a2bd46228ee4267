package step

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepID_Valid(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"pf:ruleset",
		"pkg:install:tor",
		"mirror:installurl",
		"user:deprivilege",
		"xenodm:setup",
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc, func(t *testing.T) {
			t.Parallel()

			id, err := NewStepID(tc)
			require.NoError(t, err)
			assert.Equal(t, tc, id.String())
		})
	}
}

func TestNewStepID_Empty(t *testing.T) {
	t.Parallel()

	_, err := NewStepID("")
	assert.ErrorIs(t, err, ErrEmptyStepID)

	_, err = NewStepID("   ")
	assert.ErrorIs(t, err, ErrEmptyStepID)
}

func TestNewStepID_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []string{
		":ruleset",
		"pf:",
		"pf ruleset",
		"pf::ruleset",
		"-pf:ruleset",
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc, func(t *testing.T) {
			t.Parallel()

			_, err := NewStepID(tc)
			assert.ErrorIs(t, err, ErrInvalidStepID)
		})
	}
}

func TestStepID_Area(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pkg", MustNewStepID("pkg:install:tor").Area())
	assert.Equal(t, "pf", MustNewStepID("pf:ruleset").Area())
}

func TestStepID_Equals(t *testing.T) {
	t.Parallel()

	a := MustNewStepID("pf:ruleset")
	b := MustNewStepID("pf:ruleset")
	c := MustNewStepID("usb:disable")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestStepID_IsZero(t *testing.T) {
	t.Parallel()

	var zero StepID
	assert.True(t, zero.IsZero())
	assert.False(t, MustNewStepID("pf:ruleset").IsZero())
}

func TestMustNewStepID_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustNewStepID("")
	})
}
