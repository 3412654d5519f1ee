/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualAcrossKinds(t *testing.T) {
	cases := []struct {
		a, b  Value
		equal bool
	}{
		{Int64(3), Float64(3.0), true},
		{MustDecimal("2.0"), MustDecimal("2.00"), true},
		{Int64(3), Float64(3.0001), false},
		{Int64(2), MustDecimal("2.00"), true},
		{Float64(2), MustDecimal("2.00"), true},
		{Int32(7), Int64(7), true},
		{Int32(7), MustBigInt("7"), true},
		{MustBigInt("7"), MustDecimal("7.000"), true},
		{MustBigInt("7"), Float64(7), true},
		{MustBigInt("9007199254740993"), Float64(9007199254740992), false},
		// 0.1 is not exactly one tenth in binary
		{Float64(0.1), MustDecimal("0.1"), false},
		{Float64(0.5), MustDecimal("0.5"), true},
		{Int64(math.MaxInt64), Float64(math.MaxInt64), true},
	}
	for _, c := range cases {
		eq, err := Equal(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.equal, eq, "%s = %s", c.a, c.b)
		eq, err = Equal(c.b, c.a)
		require.NoError(t, err)
		assert.Equal(t, c.equal, eq, "%s = %s", c.b, c.a)
	}
}

func TestEqualNonFinite(t *testing.T) {
	nan := Float64(math.NaN())
	inf := Float64(math.Inf(1))

	for _, other := range []Value{nan, Int64(1), MustBigInt("1"), MustDecimal("1")} {
		eq, err := Equal(nan, other)
		require.NoError(t, err)
		assert.False(t, eq, "NaN = %s", other)
	}
	eq, err := Equal(inf, MustBigInt("1000"))
	require.NoError(t, err)
	assert.False(t, eq)
	eq, err = Equal(inf, inf)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualTypeError(t *testing.T) {
	_, err := Equal(Int64(1), []int{1})
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "=", typeErr.Op)
	assert.Equal(t, 2, typeErr.Position)
	assert.Equal(t, "[]int", typeErr.Actual)
}

func TestLess(t *testing.T) {
	cases := []struct {
		a, b Value
		less bool
	}{
		{Int32(1), Int64(2), true},
		{Int64(2), Int32(1), false},
		{Float64(1.5), Int64(2), true},
		{MustDecimal("1.99"), Int64(2), true},
		{MustBigInt("100000000000000000000"), Float64(1e19), false},
		{Float64(1e19), MustBigInt("100000000000000000000"), true},
		{MustDecimal("2.0"), MustDecimal("2.00"), false},
		{MustBigInt("3"), Float64(math.Inf(1)), true},
		{Float64(math.Inf(-1)), MustDecimal("-1e100"), true},
		{Float64(math.NaN()), MustDecimal("1"), false},
		{MustDecimal("1"), Float64(math.NaN()), false},
	}
	for _, c := range cases {
		less, err := Less(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.less, less, "%s < %s", c.a, c.b)
	}
}

func TestInfinityAgainstHugeExactValues(t *testing.T) {
	inf := Float64(math.Inf(1))
	huge := []Value{MustDecimal("1e400"), MustDecimal("-1e400"), NewBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(311), nil))}

	for _, x := range huge {
		eq, err := Equal(inf, x)
		require.NoError(t, err)
		assert.False(t, eq, "+Inf = %s", x)
		eq, err = Equal(x, Float64(math.Inf(-1)))
		require.NoError(t, err)
		assert.False(t, eq, "%s = -Inf", x)

		less, err := Less(x, inf)
		require.NoError(t, err)
		assert.True(t, less, "%s < +Inf", x)
		less, err = Less(inf, x)
		require.NoError(t, err)
		assert.False(t, less, "+Inf < %s", x)
		less, err = Less(Float64(math.Inf(-1)), x)
		require.NoError(t, err)
		assert.True(t, less, "-Inf < %s", x)
	}
}

func TestLessEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		le   bool
	}{
		{Int32(1), Int64(2), true},
		{Int64(2), MustDecimal("2.00"), true},
		{MustDecimal("2.01"), Int64(2), false},
		{Float64(2), MustBigInt("2"), true},
		{Float64(math.NaN()), Float64(1), false},
		{Float64(1), Float64(math.NaN()), false},
		{Float64(math.NaN()), MustDecimal("1"), false},
		{Float64(math.NaN()), Float64(math.NaN()), false},
		{Float64(math.Inf(1)), Float64(math.Inf(1)), true},
		{MustDecimal("1e400"), Float64(math.Inf(1)), true},
	}
	for _, c := range cases {
		le, err := LessEqual(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.le, le, "%s <= %s", c.a, c.b)
	}

	_, err := LessEqual("1", Int64(1))
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "<", typeErr.Op)
	assert.Equal(t, 1, typeErr.Position)
}
