// Package engine owns the decision-procedure session: one constraint
// accumulation per verification call, one solver handle, one retained
// counterexample model. A Session is not safe for concurrent use; run
// independent scenarios on independent sessions.
package engine

import (
	"fmt"
	"math/big"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/pkg/errors"

	"fincheck/internal/smt"
)

// Session lifecycle: create -> declare variables and Add constraints ->
// Check -> optionally extract witness values -> Reset before the next
// independent call. Constraints accumulate monotonically; Reset is the only
// way back, and it is a hard precondition for reuse, not hygiene.
type Session struct {
	solver      *smt.Solver
	names       *smt.NameSet
	constraints []smt.Bool
	model       *yices2.ModelT
	outcome     Outcome
	checked     bool
}

func NewSession(timeout time.Duration) *Session {
	return &Session{
		solver:  smt.NewSolver(timeout),
		names:   smt.NewNameSet(),
		outcome: Unknown,
	}
}

// Int declares a fresh integer variable. Duplicate names within one session
// alias each other in the solver, so they are rejected as a caller bug.
func (s *Session) Int(name string) *smt.Int {
	if !s.names.Add(name) {
		panic(fmt.Sprintf("duplicate symbolic variable %q in session", name))
	}
	return smt.NewInt(name)
}

// Bool declares a fresh boolean variable under the same uniqueness rule.
func (s *Session) Bool(name string) smt.Bool {
	if !s.names.Add(name) {
		panic(fmt.Sprintf("duplicate symbolic variable %q in session", name))
	}
	return smt.NewBool(name)
}

func (s *Session) Add(constraints ...smt.Bool) {
	s.constraints = append(s.constraints, constraints...)
}

func (s *Session) Constraints() []smt.Bool {
	return s.constraints
}

// Check submits the accumulated constraint set. Re-checking a session that
// was not reset would conjoin two unrelated scenarios, so it is refused.
func (s *Session) Check() (Outcome, error) {
	if s.checked {
		return Unknown, errors.New("session holds stale constraints: Reset before reuse")
	}
	s.checked = true

	terms := make([]yices2.TermT, len(s.constraints))
	for i := range s.constraints {
		terms[i] = s.constraints[i].GetRaw()
	}
	status, model, err := s.solver.Check(terms...)
	if err != nil {
		return Unknown, errors.Wrap(err, "assert formulas")
	}

	s.outcome = outcomeFromStatus(status)
	if s.outcome == Violated {
		s.model = model
	}
	return s.outcome, nil
}

// Outcome reports the result of the last Check, Unknown before any.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// HasModel reports whether a counterexample model is retrievable.
func (s *Session) HasModel() bool {
	return s.model != nil
}

func (s *Session) requireModel() (*yices2.ModelT, error) {
	if s.model == nil {
		return nil, errors.Errorf("no counterexample model: outcome is %s", s.outcome)
	}
	return s.model, nil
}

// Int64Value evaluates an integer term in the retained counterexample.
// Only valid while the last outcome is Violated.
func (s *Session) Int64Value(v *smt.Int) (int64, error) {
	model, err := s.requireModel()
	if err != nil {
		return 0, err
	}
	val, err := smt.GetInt64Value(model, v.GetRaw())
	if err != nil {
		return 0, errors.Wrapf(err, "eval %s", v.GetName())
	}
	return val, nil
}

// BigValue is Int64Value for witnesses that may exceed 64 bits.
func (s *Session) BigValue(v *smt.Int) (*big.Int, error) {
	model, err := s.requireModel()
	if err != nil {
		return nil, err
	}
	val, err := smt.GetBigValue(model, v.GetRaw())
	if err != nil {
		return nil, errors.Wrapf(err, "eval %s", v.GetName())
	}
	return val, nil
}

func (s *Session) BoolValue(b smt.Bool) (bool, error) {
	model, err := s.requireModel()
	if err != nil {
		return false, err
	}
	val, err := smt.GetBoolValue(model, b.GetRaw())
	if err != nil {
		return false, errors.Wrapf(err, "eval %s", b.GetName())
	}
	return val, nil
}

// Reset clears accumulated constraints, the retained model and the name
// registry. After Reset the session is indistinguishable from a fresh one.
func (s *Session) Reset() {
	s.solver.Reset()
	s.names = smt.NewNameSet()
	s.constraints = nil
	s.model = nil
	s.outcome = Unknown
	s.checked = false
}

func (s *Session) Close() {
	s.model = nil
	s.solver.Close()
}

func (s *Session) Timeout() time.Duration {
	return s.solver.Timeout()
}
