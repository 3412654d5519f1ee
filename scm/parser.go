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
	"fmt"
	"strconv"
	"strings"

	"github.com/launix-de/numtower/numeric"
)

type SourceInfo struct {
	source string
	line   int
	col    int
	value  Scmer
}

func (source_info SourceInfo) String() string {
	return fmt.Sprintf("%s:%d:%d", source_info.source, source_info.line, source_info.col)
}

func Read(source, s string) (expression Scmer) {
	tokens := tokenize(source, s)
	return readFrom(&tokens)
}

func EvalAll(source, s string, en *Env) (expression Scmer) {
	tokens := tokenize(source, s)
	for len(tokens) > 0 {
		code := readFrom(&tokens)
		Validate(code, "any")
		expression = Eval(code, en)
	}
	return
}

// Syntactic Analysis
func readFrom(tokens *[]Scmer) (expression Scmer) {
	if len(*tokens) == 0 {
		return nil
	}
	// pop first element from tokens
	token := (*tokens)[0]
	*tokens = (*tokens)[1:]
	if source_info, ok := token.(SourceInfo); ok {
		// only ( carries a position
		L := make([]Scmer, 0)
		for {
			if len(*tokens) == 0 {
				panic(source_info.String() + ": expecting matching )")
			}
			if (*tokens)[0] == Symbol(")") {
				*tokens = (*tokens)[1:]
				source_info.value = L
				return source_info
			}
			L = append(L, readFrom(tokens))
		}
	}
	switch token {
	case Symbol(")"):
		panic("unexpected )")
	case Symbol("'"):
		return []Scmer{Symbol("quote"), stripSourceInfo(readFrom(tokens))}
	}
	return token
}

// quoted lists are data, not code
func stripSourceInfo(v Scmer) Scmer {
	switch v := v.(type) {
	case SourceInfo:
		return stripSourceInfo(v.value)
	case []Scmer:
		result := make([]Scmer, len(v))
		for i, x := range v {
			result[i] = stripSourceInfo(x)
		}
		return result
	}
	return v
}

// number reads an integer or float token. Integers that do not fit int64
// become bigints. Everything else stays a symbol.
func number(token string) Scmer {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return numeric.Int64(i)
	}
	if strings.ContainsAny(token, ".eE") {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return numeric.Float64(f)
		}
	} else if b, err := numeric.ParseBigInt(token); err == nil {
		return b
	}
	return Symbol(token)
}

// Lexical Analysis
func tokenize(source, s string) []Scmer {
	/* tokenizer state machine:
		0 = expecting next item
		1 = inside Number
		2 = inside Symbol
		3 = inside string
		4 = inside escaping sequence of string
		5 = inside comment
		6 = comment ending * from * /

	tokens are either Number, Symbol, string or Symbol('(') or Symbol(')')
	*/
	line := 1
	col := 0

	stringreplacer := strings.NewReplacer("\\\"", "\"", "\\\\", "\\", "\\n", "\n", "\\r", "\r", "\\t", "\t")
	state := 0
	startToken := 0
	result := make([]Scmer, 0)
	for i, ch := range s {
		// line counting
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}

		if state == 1 && (ch == '.' || ch == 'e' || ch == 'E' || ch >= '0' && ch <= '9' || (ch == '-' || ch == '+') && (s[i-1] == 'e' || s[i-1] == 'E')) {
			// another character added to Number
		} else if state == 2 && ch == '*' && s[startToken:i] == "/" {
			// begin of comment
			state = 5
		} else if state == 5 && ch == '*' {
			// comment seems to end
			state = 6
		} else if state == 5 {
			// consume another character in comment
		} else if state == 6 && ch == '/' {
			// end comment
			state = 0
		} else if state == 6 {
			// continue comment
			state = 5
		} else if state == 2 && ch != ' ' && ch != '\r' && ch != '\n' && ch != '\t' && ch != ')' && ch != '(' {
			// another character added to Symbol
		} else if state == 3 && ch != '"' && ch != '\\' {
			// another character added to string
		} else if state == 3 && ch == '\\' {
			// escape sequence
			state = 4
		} else if state == 4 {
			state = 3 // continue with string
		} else if state == 3 && ch == '"' {
			// finish string
			result = append(result, stringreplacer.Replace(s[startToken+1:i]))
			state = 0
		} else {
			// otherwise: state change!
			if state == 1 {
				result = append(result, number(s[startToken:i]))
			}
			if state == 2 {
				// finish Symbol
				result = append(result, Symbol(s[startToken:i]))
			}
			// now detect what to parse next
			startToken = i
			if ch == '(' {
				result = append(result, SourceInfo{source, line, col, nil})
				state = 0
			} else if ch == ')' {
				result = append(result, Symbol(")"))
				state = 0
			} else if ch == '\'' {
				result = append(result, Symbol("'"))
				state = 0
			} else if ch == '"' {
				// start string
				state = 3
			} else if ch >= '0' && ch <= '9' || ch == '-' {
				// start Number
				state = 1
			} else if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
				// white space
				state = 0
			} else {
				// everything else is a Symbol! (Symbols only are stopped by ' ()')
				state = 2
			}
		}
	}
	// in the end: finish unfinished Symbols and Numbers
	if state == 1 {
		result = append(result, number(s[startToken:]))
	}
	if state == 2 {
		result = append(result, Symbol(s[startToken:]))
	}
	if state == 3 || state == 4 {
		panic(fmt.Sprintf("%s:%d:%d: expecting closing \"", source, line, col))
	}
	return result
}
