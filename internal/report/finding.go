// Package report renders verification results. It is a projection of the
// engine's outcome and retained counterexample into human-readable form;
// it makes no decisions and owns no file formats.
package report

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"fincheck/internal/engine"
)

// Assignment is one witness entry: symbolic variable name to the concrete
// value the solver chose for it.
type Assignment struct {
	Name  string
	Value string
}

// Finding is the result record for one scenario. Witness and Magnitude are
// populated only when the outcome is Violated; for any other outcome the
// counterexample is undefined and stays empty.
type Finding struct {
	Scenario       string
	Outcome        engine.Outcome
	Witness        []Assignment
	MagnitudeLabel string
	Magnitude      *big.Int
	Elapsed        time.Duration
}

func NewFinding(scenario string, outcome engine.Outcome, elapsed time.Duration) *Finding {
	return &Finding{
		Scenario: scenario,
		Outcome:  outcome,
		Elapsed:  elapsed,
	}
}

func (f *Finding) AddWitness(name, value string) {
	f.Witness = append(f.Witness, Assignment{Name: name, Value: value})
}

func (f *Finding) AddWitnessInt64(name string, value int64) {
	f.AddWitness(name, fmt.Sprintf("%d", value))
}

func (f *Finding) AddWitnessBig(name string, value *big.Int) {
	f.AddWitness(name, value.String())
}

func (f *Finding) AddWitnessBool(name string, value bool) {
	f.AddWitness(name, fmt.Sprintf("%t", value))
}

// SetMagnitude records the derived size of the violation, e.g. the minted
// excess over locked, which is the value an attacker walks away with.
func (f *Finding) SetMagnitude(label string, value *big.Int) {
	f.MagnitudeLabel = label
	f.Magnitude = value
}

func (f *Finding) String() string {
	var sb strings.Builder

	header := fmt.Sprintf("[%s] %s (%.3fs)\n", f.Outcome, f.Scenario, f.Elapsed.Seconds())
	sb.WriteString(Colour(outcomeColour(f.Outcome), header))

	if f.Outcome == engine.Violated && len(f.Witness) > 0 {
		sb.WriteString("Counterexample:\n")
		for _, a := range f.Witness {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", a.Name, a.Value))
		}
	}
	if f.Magnitude != nil {
		sb.WriteString(Colour(33, fmt.Sprintf("%s: %s\n", f.MagnitudeLabel, f.Magnitude)))
	}
	return sb.String()
}

func outcomeColour(o engine.Outcome) int {
	switch o {
	case engine.Verified:
		return 32
	case engine.Violated:
		return 31
	}
	return 33
}

func Colour(color int, str string) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, str)
}
