package hoare

import (
	"testing"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/require"

	"fincheck/internal/engine"
)

func Test_TransferSafety(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	prover := NewProver()
	defer prover.Close()

	result, err := prover.ProveTransferSafety(100, 50)
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.Equal(t, engine.Verified, result.Outcome)
	require.Empty(t, result.Witness)
}

func Test_TransferSafetyVacuous(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	prover := NewProver()
	defer prover.Close()

	// amount > balance contradicts the precondition, so the triple holds
	// vacuously.
	result, err := prover.ProveTransferSafety(10, 50)
	require.NoError(t, err)
	require.True(t, result.Valid)
}

func Test_BridgeInductive(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	prover := NewProver()
	defer prover.Close()

	proof, err := prover.ProveBridgeInductive()
	require.NoError(t, err)

	// Base case holds at the all-zero state.
	require.True(t, proof.Base.Valid)

	// A lock with no matching mint breaks the invariant; the witness shows
	// the primed state diverging. This failure is the documented result of
	// the obligation, not an engine fault.
	require.False(t, proof.UnpairedStep.Valid)
	require.Equal(t, engine.Violated, proof.UnpairedStep.Outcome)
	require.NotEmpty(t, proof.UnpairedStep.Witness)

	witness := make(map[string]string, len(proof.UnpairedStep.Witness))
	for _, a := range proof.UnpairedStep.Witness {
		witness[a.Name] = a.Value
	}
	require.Contains(t, witness, "locked_prime")
	require.Contains(t, witness, "minted_prime")
	require.NotEqual(t, witness["locked_prime"], witness["minted_prime"])

	// Paired lock+mint preserves it.
	require.True(t, proof.PairedStep.Valid)

	require.True(t, proof.Valid())
}
