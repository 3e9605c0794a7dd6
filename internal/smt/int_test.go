package smt

import (
	"math/big"
	"testing"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/require"
)

func Test_IntSat(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	solver := NewSolver(0)
	x := NewInt("x")
	y := NewInt("y")

	status, model, err := solver.Check(
		x.GtInt64(10).GetRaw(),
		y.Eq(x.AddInt64(5)).GetRaw(),
	)
	require.NoError(t, err)
	require.Equal(t, yices2.StatusSat, status)
	require.NotNil(t, model)

	xv, err := GetInt64Value(model, x.GetRaw())
	require.NoError(t, err)
	yv, err := GetInt64Value(model, y.GetRaw())
	require.NoError(t, err)
	require.Greater(t, xv, int64(10))
	require.Equal(t, xv+5, yv)
}

func Test_IntUnsat(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	solver := NewSolver(0)
	x := NewInt("x")

	status, model, err := solver.Check(
		x.GtInt64(0).GetRaw(),
		x.LtInt64(0).GetRaw(),
	)
	require.NoError(t, err)
	require.Equal(t, yices2.StatusUnsat, status)
	require.Nil(t, model)
}

func Test_IntBigConstant(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	max := new(big.Int).Lsh(big.NewInt(1), 256) // 2^256
	solver := NewSolver(0)
	x := NewInt("x")

	// x strictly above 2^256 is satisfiable over unbounded integers.
	status, model, err := solver.Check(
		x.Gt(NewIntValFromBigInt(max)).GetRaw(),
	)
	require.NoError(t, err)
	require.Equal(t, yices2.StatusSat, status)

	xv, err := GetBigValue(model, x.GetRaw())
	require.NoError(t, err)
	require.Equal(t, 1, xv.Cmp(max))
}

func Test_SolverReset(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	solver := NewSolver(0)
	x := NewInt("x")

	status, _, err := solver.Check(x.EqInt64(1).GetRaw())
	require.NoError(t, err)
	require.Equal(t, yices2.StatusSat, status)

	// Without the reset this would conflict with x == 1.
	solver.Reset()
	status, _, err = solver.Check(x.EqInt64(2).GetRaw())
	require.NoError(t, err)
	require.Equal(t, yices2.StatusSat, status)
}

func Test_Sum(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	solver := NewSolver(0)
	a := NewInt("a")
	b := NewInt("b")
	c := NewInt("c")

	status, model, err := solver.Check(
		a.EqInt64(1).GetRaw(),
		b.EqInt64(2).GetRaw(),
		c.EqInt64(3).GetRaw(),
	)
	require.NoError(t, err)
	require.Equal(t, yices2.StatusSat, status)

	total, err := GetInt64Value(model, Sum(a, b, c).GetRaw())
	require.NoError(t, err)
	require.Equal(t, int64(6), total)
}
