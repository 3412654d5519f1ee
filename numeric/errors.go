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

import "fmt"

// TypeError is returned when an operand is not a number.
type TypeError struct {
	Op       string
	Position int // 1 or 2 for binary operators, 0 for unary ones
	Actual   string
}

// NotANumber is the TypeError of a unary operation op applied to x.
func NotANumber(op string, x any) *TypeError {
	return &TypeError{op, 0, typeName(x)}
}

func (e *TypeError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: expected a number, got %s", e.Op, e.Actual)
	}
	return fmt.Sprintf("%s: %s operand must be a number, got %s", e.Op, ordinal(e.Position), e.Actual)
}

// ArithmeticError is returned for well typed but undefined operations.
type ArithmeticError struct {
	Op  string
	Msg string
}

func (e *ArithmeticError) Error() string {
	return e.Op + ": " + e.Msg
}

func ordinal(i int) string {
	switch i {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", i)
}

const (
	msgIntDivideByZero     = "/ by zero"
	msgBigIntDivideByZero  = "BigInteger divide by zero"
	msgDecimalDivideByZero = "Division by zero"
	msgDecimalUndefined    = "Division undefined"
	msgNotFinite           = "infinite or NaN has no decimal value"
)
