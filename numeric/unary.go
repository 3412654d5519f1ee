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

// Square returns x * x in the kind of x.
func Square(x any) (Value, error) {
	v, ok := Of(x)
	if !ok {
		return nil, NotANumber("square", x)
	}
	return Mul(v, v)
}

// Sqrt computes the float64 square root. Fixed integers and floats yield a
// Float64 (NaN for negative input). BigInt and Decimal yield a Decimal that
// only carries float64 precision, written as the shortest decimal that reads
// back as the same double; a negative one is an ArithmeticError.
func Sqrt(x any) (Value, error) {
	v, ok := Of(x)
	if !ok {
		return nil, NotANumber("sqrt", x)
	}
	r := math.Sqrt(approx(v))
	if v.Kind() != KindBigInt && v.Kind() != KindDecimal {
		return Float64(r), nil
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, &ArithmeticError{"sqrt", msgNotFinite}
	}
	return Decimal{decimal.NewFromFloat(r)}, nil
}

// Neg returns -x in the kind of x. Negating the smallest fixed integer
// wraps to itself.
func Neg(x any) (Value, error) {
	v, ok := Of(x)
	if !ok {
		return nil, NotANumber("neg", x)
	}
	switch v := v.(type) {
	case Int32:
		return -v, nil
	case Int64:
		return -v, nil
	case Float64:
		return -v, nil
	case BigInt:
		return BigInt{new(big.Int).Neg(v.big())}, nil
	case Decimal:
		return Decimal{v.v.Neg()}, nil
	}
	panic("numeric: unknown value")
}
