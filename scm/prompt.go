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
	"io"
	"runtime/debug"
	"strings"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

// ReplInstance is the running readline, closed by the exit handler
var ReplInstance *readline.Instance

// incomplete tells if the reader ran out of tokens inside a list
func incomplete(r any) bool {
	s, ok := r.(string)
	return ok && strings.HasSuffix(s, "expecting matching )")
}

// PrintError prints a recovered script error the way the REPL shows it
func PrintError(r any) {
	if Settings.Backtrace {
		fmt.Println("error:", r, string(debug.Stack()))
	} else {
		fmt.Println("error:", r)
	}
}

// EvalLine reads, validates and evaluates one line of input and returns the
// serialized result.
func EvalLine(line string, en *Env) string {
	code := Read("user prompt", line)
	Validate(code, "any")
	result := Eval(code, en)
	return SerializeToString(result, en)
}

func Repl(en *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".numtower-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	ReplInstance = l
	defer func() {
		l.Close()
		ReplInstance = nil
	}()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				oldline = ""
				l.SetPrompt(newprompt)
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		// anti-panic func
		func() {
			defer func() {
				if r := recover(); r != nil {
					if incomplete(r) {
						// keep oldline
						oldline = line + "\n"
						l.SetPrompt(contprompt)
						return
					}
					PrintError(r)
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			result := EvalLine(line, en)
			fmt.Print(resultprompt)
			fmt.Println(result)
			oldline = ""
			l.SetPrompt(newprompt)
		}()
	}
}
