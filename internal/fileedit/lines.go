package fileedit

import "strings"

// HasLine reports whether content contains line as an exact line.
// Matching is whole-line: a line that merely contains the wanted text as a
// substring does not count.
func HasLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if l == line {
			return true
		}
	}
	return false
}

// EnsureLine returns content with line present as an exact line, appending
// it at the end if absent. Existing content keeps a single trailing newline.
func EnsureLine(content, line string) string {
	if HasLine(content, line) {
		return content
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n"
}

// MissingLines returns the subset of lines not present in content, in order.
func MissingLines(content string, lines []string) []string {
	missing := make([]string, 0, len(lines))
	for _, line := range lines {
		if !HasLine(content, line) {
			missing = append(missing, line)
		}
	}
	return missing
}
