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
/*
 * A minimal Scheme interpreter, as seen in lis.py and SICP
 * http://norvig.com/lispy.html
 * http://mitpress.mit.edu/sicp/full-text/sicp/book/node77.html
 *
 * Pieter Kelchtermans 2013
 * LICENSE: WTFPL 2.0
 */
package scm

import (
	"fmt"
	"time"

	"github.com/launix-de/numtower/numeric"
)

// Scmer is any value of the language: nil, bool, string, Symbol, []Scmer,
// numeric.Value, Proc or a native func(...Scmer) Scmer.
type Scmer any

type Symbol string //Symbols are represented by strings

type Proc struct {
	Params, Body Scmer
	En           *Env
}

/*
 Environments
*/

type Vars map[Symbol]Scmer
type Env struct {
	Vars     Vars
	Outer    *Env
	Nodefine bool // define will write to Outer
}

func (e *Env) FindRead(s Symbol) *Env {
	if _, ok := e.Vars[s]; ok {
		return e
	} else {
		if e.Outer == nil {
			return e
		}
		return e.Outer.FindRead(s)
	}
}

func (e *Env) FindWrite(s Symbol) *Env {
	if _, ok := e.Vars[s]; ok {
		return e
	} else {
		if e.Outer == nil {
			return nil
		}
		return e.Outer.FindWrite(s)
	}
}

var Globalenv Env = Env{
	Vars: Vars{ //aka an incomplete set of compiled-in values
		Symbol("true"):  true,
		Symbol("false"): false,
	},
}

func Eval(expression Scmer, en *Env) (value Scmer) {
restart:
	switch e := expression.(type) {
	case SourceInfo:
		return evalWithSourceInfo(e, en)
	case nil, bool, string, numeric.Value, Proc, func(...Scmer) Scmer:
		return expression
	case Symbol:
		v, ok := en.FindRead(e).Vars[e]
		if !ok {
			panic("undefined symbol: " + string(e))
		}
		return v
	case []Scmer:
		if len(e) == 0 {
			return expression
		}
		if head, ok := e[0].(Symbol); ok {
			switch head {
			case "quote":
				return stripSourceInfo(e[1])
			case "time":
				var start time.Time
				if TracePrint {
					start = time.Now()
				}
				var timedResult Scmer
				if Trace != nil {
					Trace.Duration(String(e[1]), "scm", func() {
						timedResult = Eval(e[1], en)
					})
				} else {
					timedResult = Eval(e[1], en)
				}
				if TracePrint {
					fmt.Println("trace", time.Since(start).String(), String(e[1]))
				}
				return timedResult
			case "if":
				i := 1
				for i+1 < len(e) {
					if ToBool(Eval(e[i], en)) {
						expression = e[i+1]
						goto restart
					}
					i += 2
				}
				if i < len(e) {
					expression = e[i]
					goto restart
				}
				return nil
			case "define", "set":
				if len(e) != 3 {
					panic(string(head) + " expects a symbol and a value")
				}
				sym, ok := e[1].(Symbol)
				if !ok {
					panic(string(head) + " expects a symbol, got " + String(e[1]))
				}
				v := Eval(e[2], en)
				target := en
				for target.Nodefine {
					target = target.Outer
				}
				target.Vars[sym] = v
				return v
			case "lambda":
				if len(e) != 3 {
					panic("lambda expects parameters and a body")
				}
				return Proc{stripSourceInfo(e[1]), e[2], en}
			case "begin":
				if len(e) == 1 {
					return nil
				}
				for _, x := range e[1 : len(e)-1] {
					Eval(x, en)
				}
				expression = e[len(e)-1]
				goto restart
			}
		}
		// application
		procedure := Eval(e[0], en)
		args := make([]Scmer, len(e)-1)
		for i, x := range e[1:] {
			args[i] = Eval(x, en)
		}
		if p, ok := procedure.(Proc); ok {
			en, expression = prepareProcCall(p, args)
			goto restart
		}
		return Apply(procedure, args...)
	default:
		panic("Unknown expression type - EVAL " + fmt.Sprint(expression))
	}
}

func evalWithSourceInfo(si SourceInfo, en *Env) (value Scmer) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(LocatedPanic); ok {
				panic(r)
			}
			panic(LocatedPanic{si, r})
		}
	}()
	return Eval(si.value, en)
}

// LocatedPanic is a panic annotated with the innermost source position.
type LocatedPanic struct {
	Source SourceInfo
	Reason any
}

func (p LocatedPanic) Error() string {
	return fmt.Sprintf("%s: %v", p.Source.String(), p.Reason)
}

func (p LocatedPanic) Unwrap() error {
	if err, ok := p.Reason.(error); ok {
		return err
	}
	return nil
}

func prepareProcCall(p Proc, args []Scmer) (*Env, Scmer) {
	env := &Env{Vars: make(Vars), Outer: p.En, Nodefine: false}
	switch params := p.Params.(type) {
	case []Scmer:
		if len(params) < len(args) {
			panic(fmt.Sprintf("Apply: function with %d parameters is supplied with %d arguments", len(params), len(args)))
		}
		for i, param := range params {
			sym, ok := param.(Symbol)
			if !ok {
				panic("lambda parameters must be symbols")
			}
			if i < len(args) {
				env.Vars[sym] = args[i]
			} else {
				env.Vars[sym] = nil
			}
		}
	case Symbol:
		env.Vars[params] = append([]Scmer{}, args...)
	case nil:
		// no arguments to bind
	default:
		panic("proc parameters must be list, symbol, or nil")
	}
	return env, p.Body
}

// helper function; Eval uses a code duplicate to get the tail recursion done right
func Apply(procedure Scmer, args ...Scmer) (value Scmer) {
	switch p := procedure.(type) {
	case func(...Scmer) Scmer:
		if Trace != nil {
			if def := DeclarationForValue(p); def != nil {
				Trace.Duration(def.Name, "builtin", func() {
					value = p(args...)
				})
				return
			}
		}
		return p(args...)
	case Proc:
		env, body := prepareProcCall(p, args)
		return Eval(body, env)
	}
	panic("Unknown function: " + String(procedure))
}

func ToBool(v Scmer) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []Scmer:
		return len(v) > 0
	case numeric.Value:
		zero, err := numeric.Equal(v, numeric.Int64(0))
		return err == nil && !zero
	}
	return true
}

func List(a ...Scmer) Scmer {
	return a
}
