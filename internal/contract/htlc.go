package contract

import (
	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// AtomicSwap is the HTLC outcome model: who paid, who received, whether the
// secret was revealed and whether the timelock ran out. The claim and refund
// rules are one-directional implications, exactly as HTLCs specify them, and
// the gaps that leaves are real: the fairness property below is expected to
// come back violated.
type AtomicSwap struct {
	AlicePaid       smt.Bool
	BobPaid         smt.Bool
	AliceReceived   smt.Bool
	BobReceived     smt.Bool
	SecretRevealed  smt.Bool
	TimelockExpired smt.Bool
}

func BuildAtomicSwap(s *engine.Session) *AtomicSwap {
	swap := &AtomicSwap{
		AlicePaid:       s.Bool("alice_paid"),
		BobPaid:         s.Bool("bob_paid"),
		AliceReceived:   s.Bool("alice_received"),
		BobReceived:     s.Bool("bob_received"),
		SecretRevealed:  s.Bool("secret_revealed"),
		TimelockExpired: s.Bool("timelock_expired"),
	}

	// Claim paths: a payment plus the revealed secret lets the counterparty
	// collect.
	s.Add(swap.AlicePaid.And(swap.SecretRevealed).Implies(swap.BobReceived))
	s.Add(swap.BobPaid.And(swap.SecretRevealed).Implies(swap.AliceReceived))

	// Refund paths: expiry without a secret returns the payment.
	s.Add(swap.AlicePaid.And(swap.TimelockExpired).And(swap.SecretRevealed.Not()).
		Implies(swap.AliceReceived))
	s.Add(swap.BobPaid.And(swap.TimelockExpired).And(swap.SecretRevealed.Not()).
		Implies(swap.BobReceived))

	return swap
}

// Fair states there is no state where Alice has paid and been left with
// nothing while Bob paid nothing and the timelock has not yet expired.
func (swap *AtomicSwap) Fair() smt.Bool {
	unfair := swap.AlicePaid.
		And(swap.AliceReceived.Not()).
		And(swap.BobPaid.Not()).
		And(swap.TimelockExpired.Not())
	return unfair.Not()
}
