package fileedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasLine_ExactMatch(t *testing.T) {
	t.Parallel()

	content := "first line\nsecond line\nthird line\n"

	assert.True(t, HasLine(content, "second line"))
	assert.True(t, HasLine(content, "first line"))
	assert.False(t, HasLine(content, "fourth line"))
}

func TestHasLine_SubstringDoesNotCount(t *testing.T) {
	t.Parallel()

	content := "# export HTTP_PROXY=socks5://127.0.0.1:9050\n"

	assert.False(t, HasLine(content, "export HTTP_PROXY=socks5://127.0.0.1:9050"))
}

func TestHasLine_EmptyContent(t *testing.T) {
	t.Parallel()

	assert.False(t, HasLine("", "anything"))
}

func TestEnsureLine_AppendsWhenAbsent(t *testing.T) {
	t.Parallel()

	got := EnsureLine("existing\n", "new line")

	assert.Equal(t, "existing\nnew line\n", got)
}

func TestEnsureLine_NoopWhenPresent(t *testing.T) {
	t.Parallel()

	content := "existing\nnew line\n"

	assert.Equal(t, content, EnsureLine(content, "new line"))
}

func TestEnsureLine_AddsMissingTrailingNewline(t *testing.T) {
	t.Parallel()

	got := EnsureLine("no trailing newline", "new line")

	assert.Equal(t, "no trailing newline\nnew line\n", got)
}

func TestEnsureLine_EmptyContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "only line\n", EnsureLine("", "only line"))
}

func TestMissingLines(t *testing.T) {
	t.Parallel()

	content := "a\nb\n"

	missing := MissingLines(content, []string{"a", "c", "b", "d"})

	assert.Equal(t, []string{"c", "d"}, missing)
}

func TestMissingLines_AllPresent(t *testing.T) {
	t.Parallel()

	missing := MissingLines("a\nb\n", []string{"a", "b"})

	assert.Empty(t, missing)
}
