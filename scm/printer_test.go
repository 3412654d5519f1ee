/*
Copyright (C) 2024-2026  Carl-Philip Hänsch

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
	"math"
	"testing"

	"github.com/launix-de/numtower/numeric"
	"github.com/stretchr/testify/assert"
)

func TestSerializeNumbers(t *testing.T) {
	cases := []struct {
		value Scmer
		want  string
	}{
		{numeric.Int64(5), "5"},
		{numeric.Int32(-5), "(int32 -5)"},
		{numeric.Float64(2), "2.0"},
		{numeric.Float64(0.5), "0.5"},
		{numeric.Float64(1e21), "1e+21"},
		{numeric.Float64(math.Inf(-1)), "(float \"-Inf\")"},
		{numeric.Float64(math.NaN()), "(float \"NaN\")"},
		{numeric.MustBigInt("123456789012345678901234"), "(bigint \"123456789012345678901234\")"},
		{numeric.MustDecimal("2.50"), "(decimal \"2.50\")"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SerializeToString(c.value, &Globalenv))
	}
}

func TestSerializeReadsBack(t *testing.T) {
	for _, v := range []numeric.Value{
		numeric.Int32(7),
		numeric.Float64(3),
		numeric.Float64(math.Inf(1)),
		numeric.MustBigInt("-98765432109876543210"),
		numeric.MustDecimal("0.3333333333333333"),
	} {
		back := run(t, SerializeToString(v, &Globalenv))
		assert.Equal(t, v.Kind(), back.(numeric.Value).Kind(), v.String())
		eq, err := numeric.Equal(v, back)
		assert.NoError(t, err)
		assert.True(t, eq, v.String())
	}
}

func TestSerializeValues(t *testing.T) {
	assert.Equal(t, "\"a\\\"b\"", SerializeToString("a\"b", &Globalenv))
	assert.Equal(t, "(1 true nil)", SerializeToString([]Scmer{numeric.Int64(1), true, nil}, &Globalenv))
	assert.Equal(t, "+", SerializeToString(Globalenv.Vars["+"], &Globalenv))
	assert.Equal(t, "sqrt", SerializeToString(Globalenv.Vars["sqrt"], &Globalenv))
	assert.Equal(t, "(lambda (x) (* x x))", SerializeToString(run(t, "(lambda (x) (* x x))"), &Globalenv))
}

func TestStringKeepsDecimalScale(t *testing.T) {
	assert.Equal(t, "2.50", String(numeric.MustDecimal("2.50")))
	assert.Equal(t, "(1 2.50 x)", String([]Scmer{numeric.Int64(1), numeric.MustDecimal("2.50"), Symbol("x")}))
}
