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
	"math/big"

	"github.com/shopspring/decimal"
)

// DivisionScale is the number of fractional digits of every decimal
// quotient. 1/3 has no finite expansion, so decimal division always rounds
// half up to this many digits.
const DivisionScale = 16

var divKernel = &kernel[Value]{
	op: "/",
	int32: func(a, b int32) (Value, error) {
		if b == 0 {
			return nil, &ArithmeticError{"/", msgIntDivideByZero}
		}
		return Int32(a / b), nil
	},
	int64: func(a, b int64) (Value, error) {
		if b == 0 {
			return nil, &ArithmeticError{"/", msgIntDivideByZero}
		}
		return Int64(a / b), nil
	},
	float64: func(a, b float64) (Value, error) {
		return Float64(a / b), nil
	},
	bigInt: func(a, b *big.Int) (Value, error) {
		if b.Sign() == 0 {
			return nil, &ArithmeticError{"/", msgBigIntDivideByZero}
		}
		return BigInt{new(big.Int).Quo(a, b)}, nil
	},
	decimal: divDecimal,
}

func divDecimal(a, b decimal.Decimal) (Value, error) {
	if b.IsZero() {
		if a.IsZero() {
			return nil, &ArithmeticError{"/", msgDecimalUndefined}
		}
		return nil, &ArithmeticError{"/", msgDecimalDivideByZero}
	}
	// DivRound rounds half away from zero and leaves the exponent at
	// -DivisionScale
	return Decimal{a.DivRound(b, DivisionScale)}, nil
}

// Div returns a / b. Integer kinds truncate toward zero, floats follow
// IEEE 754 (x/0 is an infinity, not an error) and decimals round half up to
// DivisionScale fractional digits.
func Div(a, b any) (Value, error) {
	return divKernel.apply(a, b)
}
