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

	"github.com/shopspring/decimal"
)

// Convert casts x to kind k. Widening along the lattice always works
// (apart from a non-finite float becoming a decimal). Any kind converts to
// float64 by approximation. Narrowing into an integer kind only succeeds
// when the value is integral and in range.
func Convert(x any, k Kind) (Value, error) {
	op := k.String()
	v, ok := Of(x)
	if !ok {
		return nil, &TypeError{op, 0, typeName(x)}
	}
	if v.Kind() == k {
		return v, nil
	}
	if Promote(v.Kind(), k) == k {
		return widen(op, v, k)
	}
	if k == KindFloat64 {
		return Float64(approx(v)), nil
	}
	// narrowing: go through an exact integer
	i, ok := integral(v)
	if !ok {
		return nil, &ArithmeticError{op, v.String() + " is not an integer"}
	}
	switch k {
	case KindInt32:
		if i.IsInt64() && i.Int64() >= math.MinInt32 && i.Int64() <= math.MaxInt32 {
			return Int32(i.Int64()), nil
		}
	case KindInt64:
		if i.IsInt64() {
			return Int64(i.Int64()), nil
		}
	case KindBigInt:
		return BigInt{i}, nil
	}
	return nil, &ArithmeticError{op, v.String() + " is out of range"}
}

// integral returns the integer value of v, or false if v has a fraction or
// is not finite.
func integral(v Value) (*big.Int, bool) {
	switch v := v.(type) {
	case Int32:
		return big.NewInt(int64(v)), true
	case Int64:
		return big.NewInt(int64(v)), true
	case BigInt:
		return v.Big(), true
	case Float64:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, false
		}
		i, _ := big.NewFloat(f).Int(nil)
		return i, true
	case Decimal:
		if !v.v.IsInteger() {
			return nil, false
		}
		return v.v.BigInt(), true
	}
	return nil, false
}

// Zero returns 0 in kind k.
func Zero(k Kind) Value {
	return fromInt64(0, k)
}

// One returns 1 in kind k.
func One(k Kind) Value {
	return fromInt64(1, k)
}

func fromInt64(i int64, k Kind) Value {
	switch k {
	case KindInt32:
		return Int32(i)
	case KindInt64:
		return Int64(i)
	case KindFloat64:
		return Float64(i)
	case KindBigInt:
		return BigInt{big.NewInt(i)}
	}
	return Decimal{decimal.NewFromInt(i)}
}
