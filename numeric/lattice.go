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

/*
promotion lattice:

	int32 < int64 < float64 < decimal
	int32 < int64 < bigint  < decimal

float64 with bigint meets in decimal: a float is inexact and a bigint is
unbounded, only a decimal holds both.
*/
var promotion = [numKinds][numKinds]Kind{
	//               int32        int64        float64      bigint       decimal
	KindInt32:   {KindInt32, KindInt64, KindFloat64, KindBigInt, KindDecimal},
	KindInt64:   {KindInt64, KindInt64, KindFloat64, KindBigInt, KindDecimal},
	KindFloat64: {KindFloat64, KindFloat64, KindFloat64, KindDecimal, KindDecimal},
	KindBigInt:  {KindBigInt, KindBigInt, KindDecimal, KindBigInt, KindDecimal},
	KindDecimal: {KindDecimal, KindDecimal, KindDecimal, KindDecimal, KindDecimal},
}

// Promote returns the kind both operands are computed in.
func Promote(a, b Kind) Kind {
	return promotion[a][b]
}

// widen converts v into the wider kind k. k must be Promote(v.Kind(), k).
// The only failure is a non-finite float that has to become a decimal.
func widen(op string, v Value, k Kind) (Value, error) {
	if v.Kind() == k {
		return v, nil
	}
	switch k {
	case KindInt64:
		switch v := v.(type) {
		case Int32:
			return Int64(v), nil
		}
	case KindFloat64:
		switch v := v.(type) {
		case Int32:
			return Float64(v), nil
		case Int64:
			return Float64(v), nil
		}
	case KindBigInt:
		switch v := v.(type) {
		case Int32:
			return BigInt{big.NewInt(int64(v))}, nil
		case Int64:
			return BigInt{big.NewInt(int64(v))}, nil
		}
	case KindDecimal:
		switch v := v.(type) {
		case Int32:
			return Decimal{decimal.NewFromInt32(int32(v))}, nil
		case Int64:
			return Decimal{decimal.NewFromInt(int64(v))}, nil
		case BigInt:
			return Decimal{decimal.NewFromBigInt(v.big(), 0)}, nil
		case Float64:
			d, ok := exactDecimal(float64(v))
			if !ok {
				return nil, &ArithmeticError{op, msgNotFinite}
			}
			return Decimal{d}, nil
		}
	}
	panic("numeric: " + v.Kind().String() + " does not widen to " + k.String())
}

// exactDecimal returns the exact value of the binary double f, so 0.1
// becomes 0.1000000000000000055511151231257827021181583404541015625.
// f = num / 2^k = num*5^k / 10^k
func exactDecimal(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	r := new(big.Rat).SetFloat64(f)
	k := r.Denom().BitLen() - 1
	if k == 0 {
		return decimal.NewFromBigInt(r.Num(), 0), true
	}
	scaled := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)
	scaled.Mul(scaled, r.Num())
	return decimal.NewFromBigInt(scaled, int32(-k)), true
}

// approx returns the nearest float64 of an exact value.
func approx(v Value) float64 {
	switch v := v.(type) {
	case Int32:
		return float64(v)
	case Int64:
		return float64(v)
	case Float64:
		return float64(v)
	case BigInt:
		f, _ := new(big.Float).SetInt(v.big()).Float64()
		return f
	case Decimal:
		f, _ := v.v.Float64()
		return f
	}
	panic("numeric: unknown value")
}
