package report

import (
	"fmt"
	"strings"

	"fincheck/internal/engine"
)

// Summary renders the suite-level report: per-scenario lines plus totals.
func Summary(findings []*Finding) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 70) + "\n")
	sb.WriteString("VERIFICATION SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70) + "\n")

	var verified, violated, unknown int
	for _, f := range findings {
		switch f.Outcome {
		case engine.Verified:
			verified++
		case engine.Violated:
			violated++
		default:
			unknown++
		}
		line := fmt.Sprintf("%-10s %-36s %.3fs\n",
			"["+f.Outcome.String()+"]", f.Scenario, f.Elapsed.Seconds())
		sb.WriteString(Colour(outcomeColour(f.Outcome), line))
	}

	sb.WriteString(strings.Repeat("-", 70) + "\n")
	sb.WriteString(fmt.Sprintf("Total: %d properties | %d verified | %d violated | %d unknown\n",
		len(findings), verified, violated, unknown))
	if violated > 0 {
		sb.WriteString(Colour(31, "Violations found: review the counterexamples above.\n"))
	}
	return sb.String()
}
