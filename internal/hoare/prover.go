// Package hoare proves implication-shaped verification conditions,
// {P} command {Q} as unsat(not(P and C implies Q)), through the same
// decision engine the property checkers use.
package hoare

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fincheck/internal/engine"
	"fincheck/internal/report"
	"fincheck/internal/smt"
	"fincheck/internal/strategy"
)

// ObligationResult is one discharged proof obligation. Obligations are
// reported individually: a failing inductive step with a passing base case
// is meaningful information, not a single failed bit.
type ObligationResult struct {
	Name    string
	Outcome engine.Outcome
	Valid   bool
	Witness []report.Assignment
}

// Prover owns one session and resets it per obligation, so obligations are
// independent queries with no constraint leakage between them.
type Prover struct {
	session  *engine.Session
	strategy strategy.Strategy
}

type options struct {
	timeout time.Duration
}

type Option func(*options)

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func NewProver(opts ...Option) *Prover {
	o := options{timeout: smt.DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Prover{
		session:  engine.NewSession(o.timeout),
		strategy: strategy.NewRefutation(),
	}
}

func (p *Prover) Close() {
	p.session.Close()
}

func (p *Prover) discharge(name string, vc smt.Bool, vars []*smt.Int) (*ObligationResult, error) {
	outcome, err := p.strategy.Discharge(p.session, vc)
	if err != nil {
		return nil, errors.Wrapf(err, "discharge %s", name)
	}
	result := &ObligationResult{
		Name:    name,
		Outcome: outcome,
		Valid:   outcome == engine.Verified,
	}
	if outcome == engine.Violated {
		for _, v := range vars {
			val, err := p.session.BigValue(v)
			if err != nil {
				log.Errorf("witness %s: %v", v.GetName(), err)
				continue
			}
			result.Witness = append(result.Witness, report.Assignment{
				Name:  v.GetName(),
				Value: val.String(),
			})
		}
	}
	log.Infof("obligation %s: %s", name, outcome)
	return result, nil
}

// ProveTransferSafety discharges the triple
//
//	{balance >= amount and amount > 0} balance' := balance - amount {balance' >= 0}
//
// with the given concrete bindings conjoined into the precondition.
func (p *Prover) ProveTransferSafety(preBalance, amount int64) (*ObligationResult, error) {
	log.Infof("proving transfer safety: balance=%d amount=%d", preBalance, amount)

	p.session.Reset()
	balanceBefore := p.session.Int("balance_before")
	amountVar := p.session.Int("amount")
	balanceAfter := p.session.Int("balance_after")

	pre := smt.All(
		balanceBefore.EqInt64(preBalance),
		amountVar.EqInt64(amount),
		balanceBefore.Ge(amountVar),
		amountVar.GtInt64(0),
	)
	command := balanceAfter.Eq(balanceBefore.Sub(amountVar))
	post := balanceAfter.GeInt64(0)

	vc := pre.And(command).Implies(post)
	return p.discharge("transfer-safety", vc,
		[]*smt.Int{balanceBefore, amountVar, balanceAfter})
}
