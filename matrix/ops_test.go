// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal matrix kernels.
package matrix_test

import (
	"testing"

	"github.com/KaiCodesWithGithub/vector-operations/matrix"
	"github.com/KaiCodesWithGithub/vector-operations/vector"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Dense or fails the test.
func mustFromRows[T vector.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// requireMatrixEqual compares every element of got against want.
func requireMatrixEqual[T vector.Number](t *testing.T, want [][]T, got *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "element [%d,%d]", i, j)
		}
	}
}

// ---------- Add / Sub ----------

func TestAdd_Succeeds(t *testing.T) {
	// a = [[1,2,3],[4,5,6]], b = [[6,5,4],[3,2,1]]
	a := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]int{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)

	// Expect sum = [[7,7,7],[7,7,7]]
	requireMatrixEqual(t, [][]int{{7, 7, 7}, {7, 7, 7}}, sum)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense[float64](2, 2)
	b, _ := matrix.NewDense[float64](3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_NilMatrix(t *testing.T) {
	a, _ := matrix.NewDense[int](2, 2)
	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSub_Succeeds(t *testing.T) {
	// a = [[5,4],[3,2],[1,0]]; b = all ones
	a := mustFromRows(t, [][]int{{5, 4}, {3, 2}, {1, 0}})
	b := mustFromRows(t, [][]int{{1, 1}, {1, 1}, {1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)

	// Expect diff = [[4,3],[2,1],[0,-1]]
	requireMatrixEqual(t, [][]int{{4, 3}, {2, 1}, {0, -1}}, diff)
}

func TestSub_SelfIsZero(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1.5, -2}, {3, 4.25}})

	diff, err := matrix.Sub(a, a)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{{0, 0}, {0, 0}}, diff)
}

func TestAddSub_InputsUnmodified(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int{{5, 6}, {7, 8}})

	_, err := matrix.Add(a, b)
	require.NoError(t, err)
	_, err = matrix.Sub(a, b)
	require.NoError(t, err)

	requireMatrixEqual(t, [][]int{{1, 2}, {3, 4}}, a)
	requireMatrixEqual(t, [][]int{{5, 6}, {7, 8}}, b)
}

// ---------- Scale ----------

func TestScale_Succeeds(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, -2}, {0, 3}})

	scaled, err := matrix.Scale(m, 4)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{4, -8}, {0, 12}}, scaled)
}

func TestScale_ZeroYieldsZeroMatrix(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	scaled, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{{0, 0}, {0, 0}}, scaled)
}

func TestScale_NilMatrix(t *testing.T) {
	_, err := matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose ----------

func TestTranspose_Succeeds(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, mt)
}

func TestTranspose_Involution(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	mtt, err := matrix.Transpose(mt)
	require.NoError(t, err)

	// (mᵀ)ᵀ == m element-wise.
	requireMatrixEqual(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, mtt)
}

// ---------- Hadamard ----------

func TestHadamard_Succeeds(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int{{5, 6}, {7, -8}})

	prod, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{5, 12}, {21, -32}}, prod)
}

func TestHadamard_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense[int](2, 3)
	b, _ := matrix.NewDense[int](2, 2)
	_, err := matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- MatVec ----------

func TestMatVec_Succeeds(t *testing.T) {
	// Rows of the linear map: [1,-3] and [2,4].
	// y = [1·5 + (-3)·7, 2·5 + 4·7] = [-16, 38]
	m := mustFromRows(t, [][]int{{1, -3}, {2, 4}})

	y, err := matrix.MatVec(m, []int{5, 7})
	require.NoError(t, err)
	require.Equal(t, []int{-16, 38}, y)
}

func TestMatVec_Rectangular(t *testing.T) {
	// 3×2 map applied to a length-2 vector yields a length-3 result.
	m := mustFromRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})

	y, err := matrix.MatVec(m, []float64{2.5, -1.5})
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, -1.5, 1.0}, y)
}

func TestMatVec_IdentityFixpoint(t *testing.T) {
	I, err := matrix.NewIdentity[float64](4)
	require.NoError(t, err)

	x := []float64{3.25, -1, 0, 42}
	y, err := matrix.MatVec(I, x)
	require.NoError(t, err)

	// I·x == x for any x of matching length.
	require.Equal(t, x, y)
}

func TestMatVec_Linearity(t *testing.T) {
	// m·(v1+v2) == m·v1 + m·v2; exact on integers.
	m := mustFromRows(t, [][]int{{2, -1, 3}, {0, 4, 1}})
	v1 := []int{1, 2, 3}
	v2 := []int{-4, 5, 0}

	sum, err := vector.Add(v1, v2)
	require.NoError(t, err)
	left, err := matrix.MatVec(m, sum)
	require.NoError(t, err)

	y1, err := matrix.MatVec(m, v1)
	require.NoError(t, err)
	y2, err := matrix.MatVec(m, v2)
	require.NoError(t, err)
	right, err := vector.Add(y1, y2)
	require.NoError(t, err)

	require.Equal(t, left, right)
}

func TestMatVec_FloatAccumulation(t *testing.T) {
	m := mustFromRows(t, [][]float64{{0.1, 0.2, 0.3}})

	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Len(t, y, 1)
	require.InDelta(t, 0.6, y[0], 1e-12)
}

func TestMatVec_DimensionMismatch(t *testing.T) {
	m, _ := matrix.NewDense[int](2, 3)
	_, err := matrix.MatVec(m, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec_NilArguments(t *testing.T) {
	_, err := matrix.MatVec[int](nil, []int{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, _ := matrix.NewDense[int](2, 2)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Facades ----------

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)
}

func TestNewIdentity_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZerosLike_IdentityLike(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{{0, 0}, {0, 0}}, z)

	I, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]float64{{1, 0}, {0, 1}}, I)

	// IdentityLike requires a square input.
	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSumDiff_Aliases(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int{{1, 1}, {1, 1}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{2, 3}, {4, 5}}, sum)

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	requireMatrixEqual(t, [][]int{{0, 1}, {2, 3}}, diff)
}

func TestCloneMatrix(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := matrix.CloneMatrix(a)

	require.NoError(t, c.Set(0, 0, 9))
	requireMatrixEqual(t, [][]int{{1, 2}, {3, 4}}, a)
}
