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
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/launix-de/numtower/numeric"
)

var stringEscaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\r", "\\r", "\n", "\\n")

func String(v Scmer) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return v
	case Symbol:
		return string(v)
	case numeric.Decimal:
		// keep the scale: 2.50 stays 2.50
		return v.StringFixed()
	case numeric.Value:
		return v.String()
	case []Scmer:
		l := make([]string, len(v))
		for i, x := range v {
			l[i] = String(x)
		}
		return "(" + strings.Join(l, " ") + ")"
	case func(...Scmer) Scmer:
		return "[native func]"
	case Proc:
		var b bytes.Buffer
		Serialize(&b, v, &Globalenv)
		return b.String()
	case SourceInfo:
		return String(v.value)
	default:
		return fmt.Sprint(v)
	}
}

func SerializeToString(v Scmer, glob *Env) string {
	var b bytes.Buffer
	Serialize(&b, v, glob)
	return b.String()
}

func Serialize(b *bytes.Buffer, v Scmer, glob *Env) {
	switch v := v.(type) {
	case nil:
		b.WriteString("nil")
	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case string:
		b.WriteByte('"')
		b.WriteString(stringEscaper.Replace(v))
		b.WriteByte('"')
	case numeric.Int32:
		// reading back the plain digits would give an int64
		b.WriteString("(int32 ")
		b.WriteString(v.String())
		b.WriteByte(')')
	case numeric.BigInt:
		b.WriteString("(bigint \"")
		b.WriteString(v.String())
		b.WriteString("\")")
	case numeric.Decimal:
		b.WriteString("(decimal \"")
		b.WriteString(v.StringFixed())
		b.WriteString("\")")
	case numeric.Float64:
		s := v.String()
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		if strings.ContainsAny(s, "IN") {
			// Inf and NaN have no token
			s = "(float \"" + s + "\")"
		}
		b.WriteString(s)
	case numeric.Value:
		b.WriteString(v.String())
	case Symbol:
		b.WriteString(string(v))
	case []Scmer:
		b.WriteByte('(')
		for i, x := range v {
			if i != 0 {
				b.WriteByte(' ')
			}
			Serialize(b, x, glob)
		}
		b.WriteByte(')')
	case SourceInfo:
		Serialize(b, v.value, glob)
	case Proc:
		b.WriteString("(lambda ")
		Serialize(b, v.Params, glob)
		b.WriteByte(' ')
		Serialize(b, v.Body, glob)
		b.WriteByte(')')
	case func(...Scmer) Scmer:
		serializeNativeFunc(b, v, glob)
	default:
		b.WriteString(fmt.Sprint(v))
	}
}

func serializeNativeFunc(b *bytes.Buffer, fn func(...Scmer) Scmer, en *Env) {
	if def := DeclarationForValue(fn); def != nil {
		b.WriteString(def.Name)
		return
	}
	fnPtr := reflect.ValueOf(fn).Pointer()
	for en2 := en; en2 != nil; en2 = en2.Outer {
		for k, v := range en2.Vars {
			if f, ok := v.(func(...Scmer) Scmer); ok && reflect.ValueOf(f).Pointer() == fnPtr {
				b.WriteString(string(k))
				return
			}
		}
	}
	b.WriteString("[unserializable native func]")
}
