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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func genValue() gopter.Gen {
	return gen.OneGenOf(
		gen.Int32().Map(func(i int32) Value { return Int32(i) }),
		gen.Int64().Map(func(i int64) Value { return Int64(i) }),
		gen.Float64Range(-1e12, 1e12).Map(func(f float64) Value { return Float64(f) }),
		gen.Int64().Map(func(i int64) Value {
			b := big.NewInt(i)
			return BigInt{b.Mul(b, big.NewInt(1000000007))}
		}),
		gopter.CombineGens(gen.Int64(), gen.Int32Range(0, 12)).Map(func(values []interface{}) Value {
			return Decimal{decimal.New(values[0].(int64), -values[1].(int32))}
		}),
	)
}

func equalValues(a, b Value) bool {
	eq, err := Equal(a, b)
	return err == nil && eq && a.Kind() == b.Kind()
}

func TestCommutativeOperators(t *testing.T) {
	properties := gopter.NewProperties(nil)

	for name, op := range map[string]func(a, b any) (Value, error){"+": Add, "*": Mul} {
		op := op
		properties.Property(name+" commutes across kinds", prop.ForAll(
			func(a, b Value) bool {
				ab, err := op(a, b)
				if err != nil {
					return false
				}
				ba, err := op(b, a)
				if err != nil {
					return false
				}
				return equalValues(ab, ba)
			},
			genValue(), genValue(),
		))
	}

	properties.TestingRun(t)
}

func TestPromotedKindIgnoresOrder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	for name, op := range map[string]func(a, b any) (Value, error){"-": Sub, "/": Div} {
		op := op
		properties.Property(name+" picks the same kind both ways", prop.ForAll(
			func(a, b Value) bool {
				ab, err1 := op(a, b)
				ba, err2 := op(b, a)
				if err1 != nil || err2 != nil {
					// a zero divisor on one side only
					return true
				}
				return ab.Kind() == ba.Kind() && ab.Kind() == Promote(a.Kind(), b.Kind())
			},
			genValue(), genValue(),
		))
	}

	properties.TestingRun(t)
}

func TestIdentityProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("x + 0 = x", prop.ForAll(
		func(x Value) bool {
			r, err := Add(x, Zero(x.Kind()))
			return err == nil && equalValues(r, x)
		},
		genValue(),
	))
	properties.Property("x * 1 = x", prop.ForAll(
		func(x Value) bool {
			r, err := Mul(x, One(x.Kind()))
			return err == nil && equalValues(r, x)
		},
		genValue(),
	))
	properties.Property("x - x = 0", prop.ForAll(
		func(x Value) bool {
			r, err := Sub(x, x)
			return err == nil && equalValues(r, Zero(x.Kind()))
		},
		genValue(),
	))
	properties.Property("square x = x * x", prop.ForAll(
		func(x Value) bool {
			sq, err := Square(x)
			if err != nil {
				return false
			}
			prod, err := Mul(x, x)
			return err == nil && equalValues(sq, prod)
		},
		genValue(),
	))

	properties.TestingRun(t)
}

func TestEqualIsSymmetric(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a = b iff b = a", prop.ForAll(
		func(a, b Value) bool {
			ab, err1 := Equal(a, b)
			ba, err2 := Equal(b, a)
			return err1 == nil && err2 == nil && ab == ba
		},
		genValue(), genValue(),
	))
	properties.Property("a widened to any wider kind stays equal", prop.ForAll(
		func(a Value) bool {
			for _, k := range allKinds {
				if Promote(a.Kind(), k) != k {
					continue
				}
				w, err := Convert(a, k)
				if err != nil {
					return false
				}
				if eq, err := Equal(a, w); err != nil || !eq {
					return false
				}
			}
			return true
		},
		genValue(),
	))

	properties.TestingRun(t)
}
