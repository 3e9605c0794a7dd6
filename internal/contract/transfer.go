package contract

import (
	"fmt"
	"math/big"

	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// TransferChain models numOperations sequential transfers out of one source
// account into fresh destination accounts. Negative balances are not
// representable: every balance carries a >= 0 constraint at every step,
// and each transfer is guarded by source >= amount.
type TransferChain struct {
	TotalSupply *smt.Int
	Source      []*smt.Int // Source[k] is the source balance after k transfers
	Dests       []*smt.Int // Dests[k] is destination k after receiving transfer k
	Amounts     []*smt.Int
}

func BuildTransferChain(s *engine.Session, initialSupply int64, numOperations int) *TransferChain {
	total := s.Int("total_supply")
	s.Add(total.EqInt64(initialSupply))
	s.Add(total.GtInt64(0))

	tc := &TransferChain{
		TotalSupply: total,
		Source:      make([]*smt.Int, numOperations+1),
		Dests:       make([]*smt.Int, numOperations),
		Amounts:     make([]*smt.Int, numOperations),
	}

	// Initial distribution: the whole supply sits in the source account.
	tc.Source[0] = s.Int("source_balance_0")
	s.Add(tc.Source[0].Eq(total))

	for k := 0; k < numOperations; k++ {
		amount := s.Int(fmt.Sprintf("transfer_amount_%d", k))
		s.Add(amount.GtInt64(0))
		s.Add(tc.Source[k].Ge(amount))

		after := s.Int(fmt.Sprintf("source_balance_%d", k+1))
		s.Add(after.Eq(tc.Source[k].Sub(amount)))
		s.Add(after.GeInt64(0))

		destBefore := s.Int(fmt.Sprintf("dest_balance_%d_before", k))
		s.Add(destBefore.EqInt64(0))
		dest := s.Int(fmt.Sprintf("dest_balance_%d", k))
		s.Add(dest.Eq(destBefore.Add(amount)))
		s.Add(dest.GeInt64(0))

		tc.Amounts[k] = amount
		tc.Source[k+1] = after
		tc.Dests[k] = dest
	}
	return tc
}

// Conserved states that the final balance vector still sums to the supply.
func (tc *TransferChain) Conserved() smt.Bool {
	final := make([]*smt.Int, 0, len(tc.Dests)+1)
	final = append(final, tc.Source[len(tc.Source)-1])
	final = append(final, tc.Dests...)
	return smt.Sum(final...).Eq(tc.TotalSupply)
}

// FinalBalances exposes the post-state vector for witness reporting.
func (tc *TransferChain) FinalBalances() []*smt.Int {
	final := make([]*smt.Int, 0, len(tc.Dests)+1)
	final = append(final, tc.Source[len(tc.Source)-1])
	final = append(final, tc.Dests...)
	return final
}

// OverflowStep is a single guarded transfer with balances unbounded above,
// used to search for any balance/amount pair pushing a balance past the
// configured maximum. Arithmetic is exact: "overflow" means exceeding
// maxValue, never bit truncation.
type OverflowStep struct {
	SourceBalance *smt.Int
	DestBalance   *smt.Int
	Amount        *smt.Int
	DestAfter     *smt.Int
	MaxValue      *big.Int
}

func BuildOverflowStep(s *engine.Session, maxValue *big.Int) *OverflowStep {
	source := s.Int("source_balance_0")
	dest := s.Int("dest_balance_0")
	amount := s.Int("transfer_amount_0")

	s.Add(source.GeInt64(0))
	s.Add(dest.GeInt64(0))
	s.Add(amount.GtInt64(0))
	s.Add(source.Ge(amount))

	after := s.Int("dest_balance_1")
	s.Add(after.Eq(dest.Add(amount)))

	return &OverflowStep{
		SourceBalance: source,
		DestBalance:   dest,
		Amount:        amount,
		DestAfter:     after,
		MaxValue:      new(big.Int).Set(maxValue),
	}
}

// Bounded states that the updated balance stays within the maximum.
func (o *OverflowStep) Bounded() smt.Bool {
	return o.DestAfter.Le(smt.NewIntValFromBigInt(o.MaxValue))
}
