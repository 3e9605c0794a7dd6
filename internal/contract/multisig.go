package contract

import (
	"fmt"

	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// Multisig tallies independent validator signatures. The approval flag is
// equivalent to the tally reaching the threshold: sig_count is the sum of
// 0/1 indicators over the signer booleans.
type Multisig struct {
	Signers   []smt.Bool
	SigCount  *smt.Int
	Approved  smt.Bool
	Threshold int
}

func BuildMultisig(s *engine.Session, numValidators, threshold int) *Multisig {
	signers := make([]smt.Bool, numValidators)
	indicators := make([]*smt.Int, numValidators)
	for i := 0; i < numValidators; i++ {
		signers[i] = s.Bool(fmt.Sprintf("validator_%d_signed", i))
		indicators[i] = signers[i].AsInt()
	}
	sigCount := smt.Sum(indicators...)

	approved := s.Bool("approved")
	s.Add(approved.Iff(sigCount.GeInt64(int64(threshold))))

	return &Multisig{
		Signers:   signers,
		SigCount:  sigCount,
		Approved:  approved,
		Threshold: threshold,
	}
}

// ThresholdGated states no approval exists below the threshold.
func (m *Multisig) ThresholdGated() smt.Bool {
	return m.SigCount.LtInt64(int64(m.Threshold)).Implies(m.Approved.Not())
}
