package strategy

import (
	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// Refutation is proof by contradiction: assert the negation of the property
// on top of the step semantics and ask for a satisfying state. Unsat means
// the property cannot be violated (Verified); sat hands back a genuine
// counterexample through the session's retained model (Violated).
//
// The same shape discharges implication-style verification conditions:
// unsat(not(P and C implies Q)) proves the triple.
type Refutation struct{}

func NewRefutation() *Refutation {
	return &Refutation{}
}

func (r *Refutation) Discharge(s *engine.Session, property smt.Bool) (engine.Outcome, error) {
	s.Add(property.Not())
	return s.Check()
}
