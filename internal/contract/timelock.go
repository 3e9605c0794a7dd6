package contract

import (
	"fincheck/internal/engine"
	"fincheck/internal/smt"
)

// Timelock models a challenge-period lock: funds become withdrawable only
// once current_time reaches lock_time + lock_period. The withdrawable flag
// is *defined* by a bidirectional equivalence, so forcing it true before
// the unlock time is a syntactic contradiction rather than an open gap.
type Timelock struct {
	LockTime     *smt.Int
	UnlockTime   *smt.Int
	CurrentTime  *smt.Int
	LockedAmount *smt.Int
	Withdrawable smt.Bool
}

func BuildTimelock(s *engine.Session, lockPeriod int64) *Timelock {
	lockTime := s.Int("lock_time")
	currentTime := s.Int("current_time")
	unlockTime := s.Int("unlock_time")
	lockedAmount := s.Int("locked_amount")

	s.Add(lockedAmount.GtInt64(0))
	s.Add(lockTime.GeInt64(0))
	s.Add(unlockTime.Eq(lockTime.AddInt64(lockPeriod)))
	s.Add(currentTime.Ge(lockTime))

	withdrawable := s.Bool("withdrawable")
	s.Add(withdrawable.Iff(currentTime.Ge(unlockTime)))

	return &Timelock{
		LockTime:     lockTime,
		UnlockTime:   unlockTime,
		CurrentTime:  currentTime,
		LockedAmount: lockedAmount,
		Withdrawable: withdrawable,
	}
}

// NoEarlyWithdrawal states withdrawal is impossible before the unlock time.
func (t *Timelock) NoEarlyWithdrawal() smt.Bool {
	return t.CurrentTime.Lt(t.UnlockTime).Implies(t.Withdrawable.Not())
}
