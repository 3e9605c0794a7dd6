package property

import (
	"math/big"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fincheck/internal/contract"
	"fincheck/internal/engine"
	"fincheck/internal/report"
	"fincheck/internal/smt"
)

// CheckConservation builds an N-operation transfer chain and asks whether
// any execution can change the total supply.
func (c *Checker) CheckConservation(initialSupply int64, numOperations int) (*report.Finding, error) {
	if initialSupply <= 0 {
		return nil, errors.Errorf("initial supply must be positive, got %d", initialSupply)
	}
	if numOperations < 0 {
		return nil, errors.Errorf("operation count must be non-negative, got %d", numOperations)
	}
	log.Infof("checking token conservation: supply=%d operations=%d", initialSupply, numOperations)

	start := time.Now()
	c.session.Reset()
	chain := contract.BuildTransferChain(c.session, initialSupply, numOperations)
	outcome, err := c.strategy.Discharge(c.session, chain.Conserved())
	if err != nil {
		return nil, errors.Wrap(err, "discharge conservation")
	}

	f := report.NewFinding("erc20-conservation", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessInts(f, chain.TotalSupply)
		c.witnessInts(f, chain.Amounts...)
		c.witnessInts(f, chain.FinalBalances()...)
	}
	log.Infof("token conservation: %s", outcome)
	return f, nil
}

// CheckOverflow searches for a balance update past maxValue with inputs
// unbounded above. A nil maxValue means 2^256-1. With nothing else bounding
// the inputs this finds a violating pair for every width.
func (c *Checker) CheckOverflow(maxValue *big.Int) (*report.Finding, error) {
	if maxValue == nil {
		maxValue = DefaultMaxValue()
	}
	if maxValue.Sign() <= 0 {
		return nil, errors.Errorf("max value must be positive, got %s", maxValue)
	}
	log.Infof("checking overflow bound: max=%s", maxValue)

	start := time.Now()
	c.session.Reset()
	step := contract.BuildOverflowStep(c.session, maxValue)
	outcome, err := c.strategy.Discharge(c.session, step.Bounded())
	if err != nil {
		return nil, errors.Wrap(err, "discharge overflow bound")
	}

	f := report.NewFinding("integer-overflow", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessInts(f, step.SourceBalance, step.DestBalance, step.Amount, step.DestAfter)
		c.magnitude(f, "excess over maximum",
			step.DestAfter.Sub(smt.NewIntValFromBigInt(step.MaxValue)))
	}
	log.Infof("overflow bound: %s", outcome)
	return f, nil
}
