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
	"errors"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// onexit watches for signals from the moment the package is loaded
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/dc0d/onexit.onSignal.func1"))
}

func run(t *testing.T, code string) Scmer {
	t.Helper()
	return EvalAll("test", code, &Globalenv)
}

// raised returns what evaluating code panicked with, or nil
func raised(code string) (r any) {
	defer func() { r = recover() }()
	EvalAll("test", code, &Globalenv)
	return nil
}

// raisedAs unwraps a script panic into target
func raisedAs(code string, target any) bool {
	err, ok := raised(code).(error)
	return ok && errors.As(err, target)
}
