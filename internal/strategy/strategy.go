// Package strategy factors the one discharge pattern every checker shares:
// given a session already holding the step semantics, decide whether a
// property can be broken.
package strategy

import (
	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// Strategy discharges a property against the constraints accumulated in the
// session. Implementations decide the formula shape submitted to the solver
// and how the raw answer reads as an Outcome.
type Strategy interface {
	Discharge(s *engine.Session, property smt.Bool) (engine.Outcome, error)
}
