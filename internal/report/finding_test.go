package report

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fincheck/internal/engine"
)

func Test_FindingString(t *testing.T) {
	f := NewFinding("bridge-replay", engine.Violated, 12*time.Millisecond)
	f.AddWitnessInt64("locked_1", 1000)
	f.AddWitnessInt64("minted_2", 2000)
	f.SetMagnitude("attacker profit", big.NewInt(1000))

	out := f.String()
	require.Contains(t, out, "VIOLATED")
	require.Contains(t, out, "bridge-replay")
	require.Contains(t, out, "locked_1")
	require.Contains(t, out, "attacker profit: 1000")
}

func Test_FindingVerifiedHasNoWitness(t *testing.T) {
	f := NewFinding("timelock-safety", engine.Verified, time.Millisecond)
	out := f.String()
	require.Contains(t, out, "VERIFIED")
	require.NotContains(t, out, "Counterexample")
}

func Test_Summary(t *testing.T) {
	findings := []*Finding{
		NewFinding("erc20-conservation", engine.Verified, time.Millisecond),
		NewFinding("bridge-replay", engine.Violated, time.Millisecond),
		NewFinding("slow-one", engine.Unknown, time.Second),
	}
	out := Summary(findings)
	require.Contains(t, out, "3 properties")
	require.Contains(t, out, "1 verified")
	require.Contains(t, out, "1 violated")
	require.Contains(t, out, "1 unknown")
	require.Contains(t, out, "Violations found")
}

func Test_Colour(t *testing.T) {
	out := Colour(31, "x")
	require.True(t, strings.HasPrefix(out, "\033[31m"))
	require.True(t, strings.HasSuffix(out, "\033[0m"))
}

func Test_WitnessBool(t *testing.T) {
	f := NewFinding("atomic-swap-fairness", engine.Violated, time.Millisecond)
	f.AddWitnessBool("alice_paid", true)
	f.AddWitnessBool("alice_received", false)
	require.Equal(t, []Assignment{
		{Name: "alice_paid", Value: "true"},
		{Name: "alice_received", Value: "false"},
	}, f.Witness)
}
