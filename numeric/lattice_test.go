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

var allKinds = []Kind{KindInt32, KindInt64, KindFloat64, KindBigInt, KindDecimal}

// sample returns 6 in kind k
func sample(k Kind) Value {
	return fromInt64(6, k)
}

func TestPromotionTable(t *testing.T) {
	expected := map[[2]Kind]Kind{
		{KindInt32, KindInt32}:     KindInt32,
		{KindInt32, KindInt64}:     KindInt64,
		{KindInt32, KindFloat64}:   KindFloat64,
		{KindInt32, KindBigInt}:    KindBigInt,
		{KindInt32, KindDecimal}:   KindDecimal,
		{KindInt64, KindInt64}:     KindInt64,
		{KindInt64, KindFloat64}:   KindFloat64,
		{KindInt64, KindBigInt}:    KindBigInt,
		{KindInt64, KindDecimal}:   KindDecimal,
		{KindFloat64, KindFloat64}: KindFloat64,
		{KindFloat64, KindBigInt}:  KindDecimal,
		{KindFloat64, KindDecimal}: KindDecimal,
		{KindBigInt, KindBigInt}:   KindBigInt,
		{KindBigInt, KindDecimal}:  KindDecimal,
		{KindDecimal, KindDecimal}: KindDecimal,
	}
	for pair, want := range expected {
		assert.Equal(t, want, Promote(pair[0], pair[1]), "%s with %s", pair[0], pair[1])
		assert.Equal(t, want, Promote(pair[1], pair[0]), "%s with %s", pair[1], pair[0])
	}
}

func TestPromotionClosure(t *testing.T) {
	ops := map[string]func(a, b any) (Value, error){
		"+": Add, "-": Sub, "*": Mul, "/": Div,
	}
	for name, op := range ops {
		for _, k1 := range allKinds {
			for _, k2 := range allKinds {
				r, err := op(sample(k1), sample(k2))
				require.NoError(t, err, "%s %s %s", k1, name, k2)
				assert.Equal(t, Promote(k1, k2), r.Kind(), "%s %s %s", k1, name, k2)
			}
		}
	}
}

func TestExactDecimalFromFloat(t *testing.T) {
	cases := []struct {
		f        float64
		text     string
		exponent int32
	}{
		{2, "2", 0},
		{0.5, "0.5", -1},
		{-0.25, "-0.25", -2},
		{0.1, "0.1000000000000000055511151231257827021181583404541015625", -55},
		{1e20, "100000000000000000000", 0},
	}
	for _, c := range cases {
		d, ok := exactDecimal(c.f)
		require.True(t, ok)
		assert.Equal(t, c.text, d.String(), "%v", c.f)
		assert.Equal(t, c.exponent, d.Exponent(), "%v", c.f)
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := exactDecimal(f)
		assert.False(t, ok, "%v", f)
	}
}

func TestWiden(t *testing.T) {
	v, err := widen("+", Int32(-7), KindBigInt)
	require.NoError(t, err)
	assert.Equal(t, "-7", v.String())

	v, err = widen("+", MustBigInt("123456789012345678901234567890"), KindDecimal)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", v.String())
	assert.Equal(t, int32(0), v.(Decimal).Exponent())

	_, err = widen("+", Float64(math.NaN()), KindDecimal)
	var arithErr *ArithmeticError
	require.ErrorAs(t, err, &arithErr)
	assert.Equal(t, "+", arithErr.Op)
}

func TestBigIntIsNotShared(t *testing.T) {
	b := big.NewInt(41)
	x := NewBigInt(b)
	b.SetInt64(0)
	assert.Equal(t, "41", x.String())

	copied := x.Big()
	copied.SetInt64(1)
	assert.Equal(t, "41", x.String())

	sum, err := Add(x, Int64(1))
	require.NoError(t, err)
	assert.Equal(t, "42", sum.String())
	assert.Equal(t, "41", x.String())
}
