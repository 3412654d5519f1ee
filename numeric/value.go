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

// Package numeric implements the numeric tower of the scripting language:
// five number kinds and the promotion rules that let them mix in
// arithmetic and comparison. All operations are pure; values are immutable.
package numeric

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the five numeric representations.
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat64
	KindBigInt
	KindDecimal

	numKinds = 5
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBigInt:
		return "bigint"
	case KindDecimal:
		return "decimal"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Exact reports whether values of the kind carry no rounding error.
func (k Kind) Exact() bool { return k != KindFloat64 }

// Value is a tagged number. The only implementations are Int32, Int64,
// Float64, BigInt and Decimal.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type Int32 int32
type Int64 int64
type Float64 float64

// BigInt is an arbitrary precision integer. The wrapped big.Int is never
// handed out or written to, so a BigInt can be shared freely.
type BigInt struct {
	v *big.Int
}

// Decimal is an arbitrary precision decimal (unscaled value and exponent).
type Decimal struct {
	v decimal.Decimal
}

func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float64) Kind() Kind { return KindFloat64 }
func (BigInt) Kind() Kind  { return KindBigInt }
func (Decimal) Kind() Kind { return KindDecimal }

func (Int32) isValue()   {}
func (Int64) isValue()   {}
func (Float64) isValue() {}
func (BigInt) isValue()  {}
func (Decimal) isValue() {}

func (x Int32) String() string { return strconv.FormatInt(int64(x), 10) }
func (x Int64) String() string { return strconv.FormatInt(int64(x), 10) }
func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
func (x BigInt) String() string  { return x.big().String() }
func (x Decimal) String() string { return x.v.String() }

// NewBigInt copies b into a BigInt.
func NewBigInt(b *big.Int) BigInt {
	return BigInt{new(big.Int).Set(b)}
}

// BigIntFromInt64 returns i as a BigInt.
func BigIntFromInt64(i int64) BigInt {
	return BigInt{big.NewInt(i)}
}

// Big returns a copy of the integer.
func (x BigInt) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// big returns the shared integer for read-only use; the zero BigInt is 0.
func (x BigInt) big() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// NewDecimal wraps d.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// Decimal returns the wrapped decimal. decimal.Decimal is immutable.
func (x Decimal) Decimal() decimal.Decimal { return x.v }

// Exponent is the negated scale: 2.25 has exponent -2.
func (x Decimal) Exponent() int32 { return x.v.Exponent() }

// StringFixed prints the decimal with its own scale, keeping trailing zeros.
func (x Decimal) StringFixed() string {
	if e := x.v.Exponent(); e < 0 {
		return x.v.StringFixed(-e)
	}
	return x.v.String()
}

// ParseBigInt reads a base 10 integer.
func ParseBigInt(s string) (BigInt, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid bigint %q", s)
	}
	return BigInt{b}, nil
}

// ParseDecimal reads a decimal keeping the scale of the text: "2.00" has
// exponent -2.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// MustDecimal is ParseDecimal for constants; it panics on malformed input.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustBigInt is ParseBigInt for constants; it panics on malformed input.
func MustBigInt(s string) BigInt {
	b, err := ParseBigInt(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Of classifies a Go value. Values pass through; int, int32, int64,
// float64, *big.Int and decimal.Decimal are wrapped. Anything else is not a
// number.
func Of(x any) (Value, bool) {
	switch x := x.(type) {
	case Int32:
		return x, true
	case Int64:
		return x, true
	case Float64:
		return x, true
	case BigInt:
		return x, true
	case Decimal:
		return x, true
	case *BigInt:
		if x != nil {
			return *x, true
		}
	case *Decimal:
		if x != nil {
			return *x, true
		}
	case int32:
		return Int32(x), true
	case int64:
		return Int64(x), true
	case int:
		return Int64(x), true
	case float64:
		return Float64(x), true
	case *big.Int:
		if x != nil {
			return NewBigInt(x), true
		}
	case decimal.Decimal:
		return Decimal{x}, true
	}
	return nil, false
}

// typeName describes a non-numeric operand for error messages.
func typeName(x any) string {
	if x == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", x)
}
