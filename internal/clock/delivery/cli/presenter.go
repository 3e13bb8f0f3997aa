package cli

import (
	"fmt"
	"strconv"
	"strings"

	"language-assistant/internal/clock"
)

func present(out clock.AskOutput) string {
	var b strings.Builder
	c := out.Classification

	fmt.Fprintf(&b, "\nTop Intent: %s\n", c.RawIntent)
	fmt.Fprintf(&b, "Confidence Score: %s\n", formatScore(c.Confidence))

	if len(c.Entities) > 0 {
		b.WriteString("\nEntities Found:\n")
		for _, e := range c.Entities {
			fmt.Fprintf(&b, "  - %s: %s (Confidence: %s)\n", e.Category, e.Text, formatScore(e.Confidence))
		}
	}

	b.WriteString(out.Reply.String())
	return b.String()
}

// formatScore prints the shortest exact form, so 1 stays "1" and 0.97 stays "0.97".
func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
