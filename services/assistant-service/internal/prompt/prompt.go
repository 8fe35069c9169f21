// Package prompt assembles the system instruction sent ahead of every chat query.
package prompt

import (
	"fmt"
	"strings"
)

// FallbackInstruction is used when the student has not asked for a specific format.
const FallbackInstruction = "Provide a well-structured, concise answer."

// Profile is the subset of a student's profile that shapes the prompt.
type Profile struct {
	Name       string
	Course     string
	University string
}

// Build returns the system prompt for p. A blank responseFormat selects
// FallbackInstruction; otherwise the format is echoed verbatim after trimming.
func Build(p Profile, responseFormat string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are Academia Bot, an academic assistant helping %s, a student studying %s",
		strings.TrimSpace(p.Name), strings.TrimSpace(p.Course))
	if university := strings.TrimSpace(p.University); university != "" {
		fmt.Fprintf(&b, " at %s", university)
	}
	b.WriteString(".\n")

	fmt.Fprintf(&b, "Respond only to queries related to %s or college education. Politely decline anything else.\n",
		strings.TrimSpace(p.Course))

	if format := strings.TrimSpace(responseFormat); format != "" {
		fmt.Fprintf(&b, "Format your answer as follows: %s.", strings.TrimSuffix(format, "."))
	} else {
		b.WriteString(FallbackInstruction)
	}

	return b.String()
}
