package smt

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

const DefaultTimeout = 30 * time.Second

// Solver owns a single yices context. Assertions accumulate in the context
// until Reset; there is no retraction besides Push/Pop pairs.
type Solver struct {
	ctx     yices2.ContextT
	timeout time.Duration
}

func NewSolver(timeout time.Duration) *Solver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Solver{
		ctx:     yices2.ContextT{},
		timeout: timeout,
	}
	yices2.InitContext(yices2.ConfigT{}, &s.ctx)
	return s
}

// Check asserts the given formulas on top of whatever is already in the
// context and runs the decision procedure under the solver's time budget.
// The budget is enforced with a watchdog that interrupts the search; an
// interrupted search comes back as StatusInterrupted, never as a hang.
func (s *Solver) Check(terms ...yices2.TermT) (yices2.SmtStatusT, *yices2.ModelT, error) {
	if len(terms) > 0 {
		errcode := yices2.AssertFormulas(s.ctx, terms)
		if errcode < 0 {
			return yices2.StatusError, nil, fmt.Errorf("%s", yices2.ErrorString())
		}
	}

	watchdog := time.AfterFunc(s.timeout, func() {
		yices2.StopSearch(s.ctx)
	})
	status := yices2.CheckContext(s.ctx, yices2.ParamT{})
	watchdog.Stop()

	switch status {
	case yices2.StatusSat:
		return status, yices2.GetModel(s.ctx, 1), nil
	case yices2.StatusUnsat:
		fallthrough
	case yices2.StatusIdle:
		fallthrough
	case yices2.StatusSearching:
		fallthrough
	case yices2.StatusInterrupted:
		fallthrough
	case yices2.StatusError:
		return status, nil, nil
	}
	return yices2.StatusError, nil, nil
}

func (s *Solver) Push() {
	yices2.Push(s.ctx)
}

func (s *Solver) Pop() {
	yices2.Pop(s.ctx)
}

// Reset discards every asserted formula. Required between unrelated
// verification calls on the same solver.
func (s *Solver) Reset() {
	yices2.ResetContext(s.ctx)
}

func (s *Solver) Close() {
	yices2.CloseContext(&s.ctx)
}

func (s *Solver) Timeout() time.Duration {
	return s.timeout
}

func (s *Solver) GetContext() yices2.ContextT {
	return s.ctx
}
