package property

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fincheck/internal/contract"
	"fincheck/internal/engine"
	"fincheck/internal/report"
)

// CheckPoolWithFees checks that a fee-taking swap grows the pool by exactly
// the collected fee.
func (c *Checker) CheckPoolWithFees(poolBalance, feeBps int64) (*report.Finding, error) {
	if poolBalance <= 0 {
		return nil, errors.Errorf("pool balance must be positive, got %d", poolBalance)
	}
	if feeBps < 0 || feeBps > 10000 {
		return nil, errors.Errorf("fee must be within [0, 10000] basis points, got %d", feeBps)
	}
	log.Infof("checking pool fee conservation: balance=%d fee=%dbps", poolBalance, feeBps)

	start := time.Now()
	c.session.Reset()
	pool := contract.BuildFeePool(c.session, poolBalance, feeBps)
	outcome, err := c.strategy.Discharge(c.session, pool.Conserved())
	if err != nil {
		return nil, errors.Wrap(err, "discharge pool conservation")
	}

	f := report.NewFinding("pool-fee-conservation", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessInts(f, pool.PoolBefore, pool.AmountIn, pool.Fee, pool.AmountOut, pool.PoolAfter)
	}
	log.Infof("pool fee conservation: %s", outcome)
	return f, nil
}

// CheckTimelock checks that withdrawal before the unlock time is
// unsatisfiable given the bidirectional definition of withdrawable.
func (c *Checker) CheckTimelock(lockPeriod int64) (*report.Finding, error) {
	if lockPeriod < 0 {
		return nil, errors.Errorf("lock period must be non-negative, got %d", lockPeriod)
	}
	log.Infof("checking timelock safety: period=%d", lockPeriod)

	start := time.Now()
	c.session.Reset()
	lock := contract.BuildTimelock(c.session, lockPeriod)
	outcome, err := c.strategy.Discharge(c.session, lock.NoEarlyWithdrawal())
	if err != nil {
		return nil, errors.Wrap(err, "discharge timelock safety")
	}

	f := report.NewFinding("timelock-safety", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessInts(f, lock.LockTime, lock.UnlockTime, lock.CurrentTime)
		c.witnessBools(f, lock.Withdrawable)
	}
	log.Infof("timelock safety: %s", outcome)
	return f, nil
}

// CheckByzantineThreshold checks that approval cannot happen below the
// signature threshold.
func (c *Checker) CheckByzantineThreshold(numValidators, threshold int) (*report.Finding, error) {
	if numValidators <= 0 {
		return nil, errors.Errorf("validator count must be positive, got %d", numValidators)
	}
	if threshold <= 0 || threshold > numValidators {
		return nil, errors.Errorf("threshold must be within [1, %d], got %d", numValidators, threshold)
	}
	log.Infof("checking multisig threshold: validators=%d threshold=%d", numValidators, threshold)

	start := time.Now()
	c.session.Reset()
	multisig := contract.BuildMultisig(c.session, numValidators, threshold)
	outcome, err := c.strategy.Discharge(c.session, multisig.ThresholdGated())
	if err != nil {
		return nil, errors.Wrap(err, "discharge multisig threshold")
	}

	f := report.NewFinding("byzantine-threshold", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessBools(f, multisig.Signers...)
		c.witnessBools(f, multisig.Approved)
		if count, err := c.session.BigValue(multisig.SigCount); err == nil {
			f.AddWitnessBig("signature_count", count)
		}
	}
	log.Infof("multisig threshold: %s", outcome)
	return f, nil
}

// CheckAtomicSwapFairness searches for an unfair HTLC outcome. The model's
// one-directional claim rules leave a gap while the swap is pending, so a
// violating state exists and this reports it.
func (c *Checker) CheckAtomicSwapFairness() (*report.Finding, error) {
	log.Infof("checking atomic swap fairness")

	start := time.Now()
	c.session.Reset()
	swap := contract.BuildAtomicSwap(c.session)
	outcome, err := c.strategy.Discharge(c.session, swap.Fair())
	if err != nil {
		return nil, errors.Wrap(err, "discharge swap fairness")
	}

	f := report.NewFinding("atomic-swap-fairness", outcome, time.Since(start))
	if outcome == engine.Violated {
		c.witnessBools(f, swap.AlicePaid, swap.AliceReceived, swap.BobPaid,
			swap.BobReceived, swap.SecretRevealed, swap.TimelockExpired)
	}
	log.Infof("atomic swap fairness: %s", outcome)
	return f, nil
}
