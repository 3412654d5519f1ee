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

var equalKernel = &kernel[bool]{
	op:      "=",
	int32:   func(a, b int32) (bool, error) { return a == b, nil },
	int64:   func(a, b int64) (bool, error) { return a == b, nil },
	float64: func(a, b float64) (bool, error) { return a == b, nil },
	bigInt:  func(a, b *big.Int) (bool, error) { return a.Cmp(b) == 0, nil },
	// Cmp and not structural equality: 2.0 = 2.00
	decimal: func(a, b decimal.Decimal) (bool, error) { return a.Cmp(b) == 0, nil },
}

var lessKernel = &kernel[bool]{
	op:      "<",
	int32:   func(a, b int32) (bool, error) { return a < b, nil },
	int64:   func(a, b int64) (bool, error) { return a < b, nil },
	float64: func(a, b float64) (bool, error) { return a < b, nil },
	bigInt:  func(a, b *big.Int) (bool, error) { return a.Cmp(b) < 0, nil },
	decimal: func(a, b decimal.Decimal) (bool, error) { return a.Cmp(b) < 0, nil },
}

// Equal compares the mathematical values of a and b:
// Int64(2), Float64(2) and Decimal 2.00 are all equal.
func Equal(a, b any) (bool, error) {
	if r, ok, err := nonFinite(equalKernel.op, a, b, func(x, y float64) bool { return x == y }); ok || err != nil {
		return r, err
	}
	return equalKernel.apply(a, b)
}

// Less reports a < b by value. NaN is unordered.
func Less(a, b any) (bool, error) {
	if r, ok, err := nonFinite(lessKernel.op, a, b, func(x, y float64) bool { return x < y }); ok || err != nil {
		return r, err
	}
	return lessKernel.apply(a, b)
}

// LessEqual reports a <= b by value. Like Less it is false whenever NaN is
// involved.
func LessEqual(a, b any) (bool, error) {
	less, err := Less(a, b)
	if err != nil || less {
		return less, err
	}
	return Equal(a, b)
}

// nonFinite handles comparisons where a NaN or an infinity meets a kind
// that would route through decimal. Those have no decimal value. The exact
// side is finite however large it is, so it stands in as 0 against the
// float. ok is false when the regular kernel applies.
func nonFinite(op string, a, b any, cmp func(x, y float64) bool) (result bool, ok bool, err error) {
	va, vb, err := operands(op, a, b)
	if err != nil {
		return false, false, err
	}
	if Promote(va.Kind(), vb.Kind()) != KindDecimal {
		return false, false, nil
	}
	if !isNonFinite(va) && !isNonFinite(vb) {
		return false, false, nil
	}
	return cmp(finiteAsZero(va), finiteAsZero(vb)), true, nil
}

func finiteAsZero(v Value) float64 {
	if isNonFinite(v) {
		return float64(v.(Float64))
	}
	return 0
}

func isNonFinite(v Value) bool {
	f, ok := v.(Float64)
	return ok && (math.IsNaN(float64(f)) || math.IsInf(float64(f), 0))
}
