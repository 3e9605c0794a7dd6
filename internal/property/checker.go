// Package property implements the checking operations: each builds one
// scenario's step semantics, discharges the negated safety invariant and
// reports the outcome with any counterexample witness.
package property

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	log "github.com/sirupsen/logrus"

	"fincheck/internal/engine"
	"fincheck/internal/report"
	"fincheck/internal/smt"
	"fincheck/internal/strategy"
)

// Checker owns one decision-engine session and reuses it across scenarios
// with a reset at every scenario boundary. One Checker per goroutine; run
// parallel scenarios on separate Checkers.
type Checker struct {
	session  *engine.Session
	strategy strategy.Strategy
}

type options struct {
	timeout  time.Duration
	strategy strategy.Strategy
}

type Option func(*options)

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithStrategy(st strategy.Strategy) Option {
	return func(o *options) {
		o.strategy = st
	}
}

func NewChecker(opts ...Option) *Checker {
	o := options{
		timeout:  smt.DefaultTimeout,
		strategy: strategy.NewRefutation(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker{
		session:  engine.NewSession(o.timeout),
		strategy: o.strategy,
	}
}

func (c *Checker) Session() *engine.Session {
	return c.session
}

func (c *Checker) Close() {
	c.session.Close()
}

// DefaultMaxValue is the uint256 ceiling used when no overflow bound is
// supplied.
func DefaultMaxValue() *big.Int {
	return new(big.Int).Sub(math.BigPow(2, 256), big.NewInt(1))
}

func (c *Checker) witnessInts(f *report.Finding, vars ...*smt.Int) {
	for _, v := range vars {
		val, err := c.session.BigValue(v)
		if err != nil {
			log.Errorf("witness %s: %v", v.GetName(), err)
			continue
		}
		f.AddWitnessBig(v.GetName(), val)
	}
}

func (c *Checker) witnessBools(f *report.Finding, vars ...smt.Bool) {
	for _, v := range vars {
		val, err := c.session.BoolValue(v)
		if err != nil {
			log.Errorf("witness %s: %v", v.GetName(), err)
			continue
		}
		f.AddWitnessBool(v.GetName(), val)
	}
}

// magnitude evaluates a derived violation-size term in the counterexample.
func (c *Checker) magnitude(f *report.Finding, label string, term *smt.Int) {
	val, err := c.session.BigValue(term)
	if err != nil {
		log.Errorf("magnitude %s: %v", label, err)
		return
	}
	f.SetMagnitude(label, val)
}
