/*
Copyright (C) 2023-2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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
package scm

import (
	"strconv"

	"github.com/launix-de/numtower/numeric"
)

// must turns an engine error into a script error
func must(v numeric.Value, err error) Scmer {
	if err != nil {
		panic(err)
	}
	return v
}

// fold applies op left to right: (- a b c) = ((a - b) - c)
func fold(op func(a, b any) (numeric.Value, error), a []Scmer) Scmer {
	acc := a[0]
	for _, x := range a[1:] {
		acc = must(op(acc, x))
	}
	return acc
}

// chain checks rel on every neighbouring pair: (< a b c) = a < b and b < c
func chain(rel func(a, b any) (bool, error), a []Scmer) Scmer {
	for i := 1; i < len(a); i++ {
		ok, err := rel(a[i-1], a[i])
		if err != nil {
			panic(err)
		}
		if !ok {
			return false
		}
	}
	return true
}

func flip(rel func(a, b any) (bool, error)) func(a, b any) (bool, error) {
	return func(a, b any) (bool, error) { return rel(b, a) }
}

// convert backs the kind constructors; strings are read with parse.
func convert(k numeric.Kind, parse func(s string) (numeric.Value, error), x Scmer) Scmer {
	if s, ok := x.(string); ok {
		v, err := parse(s)
		if err != nil {
			panic(k.String() + ": " + err.Error())
		}
		return must(numeric.Convert(v, k))
	}
	return must(numeric.Convert(x, k))
}

func parseInteger(s string) (numeric.Value, error) {
	return numeric.ParseBigInt(s)
}

func parseFloat(s string) (numeric.Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return numeric.Float64(f), nil
}

func parseDecimal(s string) (numeric.Value, error) {
	return numeric.ParseDecimal(s)
}

func init_alu() {
	DeclareTitle("Arithmetic")

	Declare(&Globalenv, &Declaration{
		"number?", "tells if the value is a number",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value"},
		}, "bool",
		func(a ...Scmer) Scmer {
			_, ok := a[0].(numeric.Value)
			return ok
		},
	})
	Declare(&Globalenv, &Declaration{
		"numeric-kind", "returns the representation of a number: int32, int64, float64, bigint or decimal",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
		}, "string",
		func(a ...Scmer) Scmer {
			v, ok := a[0].(numeric.Value)
			if !ok {
				panic(numeric.NotANumber("numeric-kind", a[0]))
			}
			return v.Kind().String()
		},
	})
	Declare(&Globalenv, &Declaration{
		"+", "adds two or more numbers; mixed kinds are promoted to the narrowest kind holding both",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to add"},
		}, "number",
		func(a ...Scmer) Scmer {
			return fold(numeric.Add, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"-", "subtracts two or more numbers from the first one; with one argument it negates",
		1, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "number",
		func(a ...Scmer) Scmer {
			if len(a) == 1 {
				return must(numeric.Neg(a[0]))
			}
			return fold(numeric.Sub, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"*", "multiplies two or more numbers",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "number",
		func(a ...Scmer) Scmer {
			return fold(numeric.Mul, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"/", "divides the first number by the others; integers truncate, decimals round half up to 16 digits, floats follow IEEE 754",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "number",
		func(a ...Scmer) Scmer {
			return fold(numeric.Div, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"=", "compares numbers by value across kinds, (= 2 2.0 (decimal \"2.00\")) is true",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return chain(numeric.Equal, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"<", "tells if the numbers are strictly ascending",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return chain(numeric.Less, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		">", "tells if the numbers are strictly descending",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return chain(flip(numeric.Less), a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"<=", "tells if the numbers are ascending",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return chain(numeric.LessEqual, a)
		},
	})
	Declare(&Globalenv, &Declaration{
		">=", "tells if the numbers are descending",
		2, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return chain(flip(numeric.LessEqual), a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"neg", "negates a number, keeping its kind",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
		}, "number",
		func(a ...Scmer) Scmer {
			return must(numeric.Neg(a[0]))
		},
	})
	Declare(&Globalenv, &Declaration{
		"square", "multiplies a number with itself",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
		}, "number",
		func(a ...Scmer) Scmer {
			return must(numeric.Square(a[0]))
		},
	})
	Declare(&Globalenv, &Declaration{
		"sqrt", "returns the square root of a number; bigints and decimals give a decimal of float64 precision",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
		}, "number",
		func(a ...Scmer) Scmer {
			return must(numeric.Sqrt(a[0]))
		},
	})

	DeclareTitle("Number kinds")

	Declare(&Globalenv, &Declaration{
		"int32", "converts a number or string to a 32 bit integer",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number|string", "value"},
		}, "int",
		func(a ...Scmer) Scmer {
			return convert(numeric.KindInt32, parseInteger, a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"int64", "converts a number or string to a 64 bit integer",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number|string", "value"},
		}, "int",
		func(a ...Scmer) Scmer {
			return convert(numeric.KindInt64, parseInteger, a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"bigint", "converts a number or string to an arbitrary precision integer",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number|string", "value"},
		}, "int",
		func(a ...Scmer) Scmer {
			return convert(numeric.KindBigInt, parseInteger, a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"float", "converts a number or string to a 64 bit float",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number|string", "value"},
		}, "number",
		func(a ...Scmer) Scmer {
			return convert(numeric.KindFloat64, parseFloat, a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"decimal", "converts a number or string to an arbitrary precision decimal; (decimal \"2.50\") keeps its scale, floats convert with their exact binary value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number|string", "value"},
		}, "number",
		func(a ...Scmer) Scmer {
			return convert(numeric.KindDecimal, parseDecimal, a[0])
		},
	})
}

func init() {
	init_alu()
}
