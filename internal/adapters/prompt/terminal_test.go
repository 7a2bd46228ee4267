package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Confirm_Affirmative(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"y", "Y", "yes", "YES", "  yes  "} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(input+"\n"), &out)

			ok, err := term.Confirm("Install package tor?")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Contains(t, out.String(), "Install package tor? [y/n]: ")
		})
	}
}

func TestTerminal_Confirm_Negative(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"n", "N", "no", "NO"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(input+"\n"), &out)

			ok, err := term.Confirm("Disable USB?")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestTerminal_Confirm_RepromptsOnAmbiguousAnswer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("maybe\n\nok\ny\n"), &out)

	ok, err := term.Confirm("Replace the firewall ruleset?")
	require.NoError(t, err)
	assert.True(t, ok)

	// One guidance line per ambiguous answer, and the question asked again.
	assert.Equal(t, 3, strings.Count(out.String(), `Please answer "y" or "n".`))
	assert.Equal(t, 4, strings.Count(out.String(), "[y/n]: "))
}

func TestTerminal_Confirm_NoDefaultOnEOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	_, err := term.Confirm("Disable USB?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerminal_Ask_SkipsEmptyAnswers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\n   \nalice\n"), &out)

	answer, err := term.Ask("Which user account should this machine be hardened for?")
	require.NoError(t, err)
	assert.Equal(t, "alice", answer)
}

func TestTerminal_Ask_EOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	_, err := term.Ask("Which user?")
	assert.ErrorIs(t, err, io.EOF)
}
