package engine

import (
	"testing"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/require"
)

func Test_SessionVerified(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s := NewSession(0)
	x := s.Int("x")
	s.Add(x.GtInt64(0))
	s.Add(x.LtInt64(0))

	outcome, err := s.Check()
	require.NoError(t, err)
	require.Equal(t, Verified, outcome)
	require.False(t, s.HasModel())
}

func Test_SessionViolated(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s := NewSession(0)
	x := s.Int("x")
	s.Add(x.GtInt64(41))
	s.Add(x.LtInt64(43))

	outcome, err := s.Check()
	require.NoError(t, err)
	require.Equal(t, Violated, outcome)
	require.True(t, s.HasModel())

	val, err := s.Int64Value(x)
	require.NoError(t, err)
	require.Equal(t, int64(42), val)
}

func Test_SessionStaleConstraints(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s := NewSession(0)
	x := s.Int("x")
	s.Add(x.EqInt64(1))

	_, err := s.Check()
	require.NoError(t, err)

	// Re-checking without a reset would conjoin unrelated scenarios.
	_, err = s.Check()
	require.Error(t, err)

	s.Reset()
	y := s.Int("y")
	s.Add(y.EqInt64(2))
	outcome, err := s.Check()
	require.NoError(t, err)
	require.Equal(t, Violated, outcome)
}

func Test_SessionModelGuard(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s := NewSession(0)
	x := s.Int("x")
	s.Add(x.GtInt64(0))
	s.Add(x.LtInt64(0))

	outcome, err := s.Check()
	require.NoError(t, err)
	require.Equal(t, Verified, outcome)

	// No counterexample exists, so extraction must fail rather than hand
	// back a stale model.
	_, err = s.Int64Value(x)
	require.Error(t, err)
}

func Test_SessionResetIsolation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	runB := func(s *Session) Outcome {
		y := s.Int("y")
		s.Add(y.GtInt64(10))
		s.Add(y.LtInt64(20))
		outcome, err := s.Check()
		require.NoError(t, err)
		return outcome
	}

	fresh := NewSession(0)
	want := runB(fresh)

	// Scenario A makes y > 100 unavoidable; without the reset, scenario B
	// would inherit that and flip its result.
	reused := NewSession(0)
	y := reused.Int("y")
	reused.Add(y.GtInt64(100))
	_, err := reused.Check()
	require.NoError(t, err)

	reused.Reset()
	require.Equal(t, want, runB(reused))
}

func Test_SessionDuplicateName(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s := NewSession(0)
	s.Int("balance_0")
	require.Panics(t, func() {
		s.Int("balance_0")
	})

	// A reset clears the name registry along with the constraints.
	s.Reset()
	require.NotPanics(t, func() {
		s.Int("balance_0")
	})
}

func Test_OutcomeString(t *testing.T) {
	require.Equal(t, "VERIFIED", Verified.String())
	require.Equal(t, "VIOLATED", Violated.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
}
