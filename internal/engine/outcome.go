package engine

import (
	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

// Outcome is the tri-state result of every checking operation. All three
// values are valid results of a correctly functioning engine; only Unknown
// signals that the decision procedure could not decide within its budget.
type Outcome int

const (
	// Verified: the negated-property query is unsatisfiable, the property
	// cannot be violated under the modeled semantics.
	Verified Outcome = iota
	// Violated: a satisfying assignment exists and is a genuine
	// counterexample to the property.
	Violated
	// Unknown: timeout, interrupt or solver error. Never coerced into a
	// proof in either direction.
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Verified:
		return "VERIFIED"
	case Violated:
		return "VIOLATED"
	case Unknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// outcomeFromStatus maps the raw solver answer for a refutation-shaped
// query: sat means the negated property is reachable.
func outcomeFromStatus(status yices2.SmtStatusT) Outcome {
	switch status {
	case yices2.StatusSat:
		return Violated
	case yices2.StatusUnsat:
		return Verified
	}
	return Unknown
}
