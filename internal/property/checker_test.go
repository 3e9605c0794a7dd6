package property

import (
	"math/big"
	"testing"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/require"

	"fincheck/internal/engine"
)

func Test_Conservation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	for _, ops := range []int{0, 1, 2, 3, 5, 8} {
		finding, err := checker.CheckConservation(1000000, ops)
		require.NoError(t, err)
		require.Equal(t, engine.Verified, finding.Outcome, "operations=%d", ops)
	}
}

func Test_ConservationBadParams(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	_, err := checker.CheckConservation(0, 3)
	require.Error(t, err)
	_, err = checker.CheckConservation(-5, 3)
	require.Error(t, err)
	_, err = checker.CheckConservation(100, -1)
	require.Error(t, err)
}

func Test_BridgeConservation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	for _, amount := range []int64{1, 1000, 5000000} {
		finding, err := checker.CheckBridgeConservation(amount)
		require.NoError(t, err)
		require.Equal(t, engine.Verified, finding.Outcome, "amount=%d", amount)
	}
}

func Test_ReplayVulnerability(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckReplayVulnerability()
	require.NoError(t, err)
	require.Equal(t, engine.Violated, finding.Outcome)
	require.Equal(t, "attacker profit", finding.MagnitudeLabel)
	require.Equal(t, int64(replayAmount), finding.Magnitude.Int64())
	require.NotEmpty(t, finding.Witness)
}

func Test_OverflowAllWidths(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	for _, width := range []int64{8, 16, 32, 256} {
		max := new(big.Int).Sub(ethmath.BigPow(2, width), big.NewInt(1))
		finding, err := checker.CheckOverflow(max)
		require.NoError(t, err)
		// With inputs unbounded above, a violating pair always exists.
		require.Equal(t, engine.Violated, finding.Outcome, "width=%d", width)
		require.NotNil(t, finding.Magnitude, "width=%d", width)
		require.True(t, finding.Magnitude.Sign() > 0, "width=%d", width)
	}
}

func Test_OverflowDefaultMax(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckOverflow(nil)
	require.NoError(t, err)
	require.Equal(t, engine.Violated, finding.Outcome)
}

func Test_MultiHopBridge(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckMultiHopBridge(1000)
	require.NoError(t, err)
	require.Equal(t, engine.Verified, finding.Outcome)
}

func Test_PoolWithFees(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckPoolWithFees(100000, 30)
	require.NoError(t, err)
	require.Equal(t, engine.Verified, finding.Outcome)

	_, err = checker.CheckPoolWithFees(0, 30)
	require.Error(t, err)
	_, err = checker.CheckPoolWithFees(100000, 10001)
	require.Error(t, err)
}

func Test_Timelock(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckTimelock(50400)
	require.NoError(t, err)
	require.Equal(t, engine.Verified, finding.Outcome)
}

func Test_ByzantineThreshold(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	finding, err := checker.CheckByzantineThreshold(9, 5)
	require.NoError(t, err)
	require.Equal(t, engine.Verified, finding.Outcome)

	_, err = checker.CheckByzantineThreshold(9, 10)
	require.Error(t, err)
	_, err = checker.CheckByzantineThreshold(0, 1)
	require.Error(t, err)
}

func Test_AtomicSwapFairness(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	checker := NewChecker()
	defer checker.Close()

	// The one-directional HTLC rules leave a pending-state gap, so the
	// fairness search is expected to find a violating state.
	finding, err := checker.CheckAtomicSwapFairness()
	require.NoError(t, err)
	require.Equal(t, engine.Violated, finding.Outcome)
	require.NotEmpty(t, finding.Witness)
}

func Test_CheckerResetIsolation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	// Scenario B alone on a fresh checker.
	fresh := NewChecker()
	want, err := fresh.CheckBridgeConservation(1000)
	require.NoError(t, err)
	fresh.Close()

	// Scenario A (a violated one, retaining a model) then scenario B on
	// the same checker must match the fresh run exactly.
	reused := NewChecker()
	defer reused.Close()
	_, err = reused.CheckReplayVulnerability()
	require.NoError(t, err)
	got, err := reused.CheckBridgeConservation(1000)
	require.NoError(t, err)

	require.Equal(t, want.Outcome, got.Outcome)
	require.Equal(t, want.Witness, got.Witness)
}
