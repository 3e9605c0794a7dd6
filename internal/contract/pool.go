package contract

import (
	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// FeePool is one fee-taking swap against a liquidity pool. The fee is
// defined by exact cross-multiplication, fee * 10000 == amount_in * fee_bps,
// so there is no rounding to hide value in.
type FeePool struct {
	PoolBefore *smt.Int
	PoolAfter  *smt.Int
	AmountIn   *smt.Int
	AmountOut  *smt.Int
	Fee        *smt.Int
}

func BuildFeePool(s *engine.Session, poolBalance, feeBps int64) *FeePool {
	poolBefore := s.Int("pool_balance_0")
	s.Add(poolBefore.EqInt64(poolBalance))
	s.Add(poolBefore.GtInt64(0))

	amountIn := s.Int("amount_in")
	s.Add(amountIn.GtInt64(0))
	s.Add(amountIn.Le(poolBefore))

	fee := s.Int("fee")
	s.Add(fee.MulInt64(10000).Eq(amountIn.MulInt64(feeBps)))
	s.Add(fee.GeInt64(0))

	amountOut := s.Int("amount_out")
	s.Add(amountOut.Eq(amountIn.Sub(fee)))

	poolAfter := s.Int("pool_balance_1")
	s.Add(poolAfter.Eq(poolBefore.Add(amountIn).Sub(amountOut)))

	return &FeePool{
		PoolBefore: poolBefore,
		PoolAfter:  poolAfter,
		AmountIn:   amountIn,
		AmountOut:  amountOut,
		Fee:        fee,
	}
}

// Conserved states the pool grows by exactly the collected fee.
func (p *FeePool) Conserved() smt.Bool {
	return p.PoolAfter.Eq(p.PoolBefore.Add(p.Fee))
}
