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

// kernel holds the same-kind implementations of one binary operator.
// apply classifies both operands, widens them to the promoted kind and runs
// the matching function, so every one of the 25 kind pairs ends in exactly
// one of the five entries.
type kernel[T any] struct {
	op      string
	int32   func(a, b int32) (T, error)
	int64   func(a, b int64) (T, error)
	float64 func(a, b float64) (T, error)
	bigInt  func(a, b *big.Int) (T, error)
	decimal func(a, b decimal.Decimal) (T, error)
}

func (k *kernel[T]) apply(a, b any) (result T, err error) {
	va, vb, err := operands(k.op, a, b)
	if err != nil {
		return result, err
	}
	target := Promote(va.Kind(), vb.Kind())
	if va, err = widen(k.op, va, target); err != nil {
		return result, err
	}
	if vb, err = widen(k.op, vb, target); err != nil {
		return result, err
	}
	switch target {
	case KindInt32:
		return k.int32(int32(va.(Int32)), int32(vb.(Int32)))
	case KindInt64:
		return k.int64(int64(va.(Int64)), int64(vb.(Int64)))
	case KindFloat64:
		return k.float64(float64(va.(Float64)), float64(vb.(Float64)))
	case KindBigInt:
		return k.bigInt(va.(BigInt).big(), vb.(BigInt).big())
	default:
		return k.decimal(va.(Decimal).v, vb.(Decimal).v)
	}
}

// operands checks both operands before anything is dispatched.
func operands(op string, a, b any) (Value, Value, error) {
	va, ok := Of(a)
	if !ok {
		return nil, nil, &TypeError{op, 1, typeName(a)}
	}
	vb, ok := Of(b)
	if !ok {
		return nil, nil, &TypeError{op, 2, typeName(b)}
	}
	return va, vb, nil
}

var addKernel = &kernel[Value]{
	op:      "+",
	int32:   func(a, b int32) (Value, error) { return Int32(a + b), nil },
	int64:   func(a, b int64) (Value, error) { return Int64(a + b), nil },
	float64: func(a, b float64) (Value, error) { return Float64(a + b), nil },
	bigInt:  func(a, b *big.Int) (Value, error) { return BigInt{new(big.Int).Add(a, b)}, nil },
	decimal: func(a, b decimal.Decimal) (Value, error) { return Decimal{a.Add(b)}, nil },
}

var subKernel = &kernel[Value]{
	op:      "-",
	int32:   func(a, b int32) (Value, error) { return Int32(a - b), nil },
	int64:   func(a, b int64) (Value, error) { return Int64(a - b), nil },
	float64: func(a, b float64) (Value, error) { return Float64(a - b), nil },
	bigInt:  func(a, b *big.Int) (Value, error) { return BigInt{new(big.Int).Sub(a, b)}, nil },
	decimal: func(a, b decimal.Decimal) (Value, error) { return Decimal{a.Sub(b)}, nil },
}

var mulKernel = &kernel[Value]{
	op:      "*",
	int32:   func(a, b int32) (Value, error) { return Int32(a * b), nil },
	int64:   func(a, b int64) (Value, error) { return Int64(a * b), nil },
	float64: func(a, b float64) (Value, error) { return Float64(a * b), nil },
	bigInt:  func(a, b *big.Int) (Value, error) { return BigInt{new(big.Int).Mul(a, b)}, nil },
	decimal: func(a, b decimal.Decimal) (Value, error) { return Decimal{a.Mul(b)}, nil },
}

// Add returns a + b in the promoted kind. Fixed width integers wrap.
func Add(a, b any) (Value, error) {
	return addKernel.apply(a, b)
}

// Sub returns a - b in the promoted kind.
func Sub(a, b any) (Value, error) {
	return subKernel.apply(a, b)
}

// Mul returns a * b in the promoted kind. Decimal scales add up, nothing is
// rounded.
func Mul(a, b any) (Value, error) {
	return mulKernel.apply(a, b)
}
