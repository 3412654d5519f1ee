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
	"github.com/dc0d/onexit"
	"github.com/launix-de/numtower/numeric"
)

type SettingsT struct {
	Backtrace  bool // print go stack traces of script errors
	Trace      bool // write a trace_*.json of builtin calls
	TracePrint bool // print the duration of (time ...) blocks
}

var Settings SettingsT = SettingsT{false, false, false}

// call this after you filled Settings
func InitSettings() {
	SetTrace(Settings.Trace)
	TracePrint = Settings.TracePrint
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
}

// ChangeSettings is the (settings) builtin: no argument lists all settings,
// one reads a setting, two write it.
func ChangeSettings(a ...Scmer) Scmer {
	if len(a) == 0 {
		return []Scmer{
			"Backtrace", Settings.Backtrace,
			"Trace", Settings.Trace,
			"TracePrint", Settings.TracePrint,
			"DivisionScale", numeric.Int64(numeric.DivisionScale),
		}
	}
	name := String(a[0])
	if len(a) == 1 {
		switch name {
		case "Backtrace":
			return Settings.Backtrace
		case "Trace":
			return Settings.Trace
		case "TracePrint":
			return Settings.TracePrint
		case "DivisionScale":
			return numeric.Int64(numeric.DivisionScale)
		default:
			panic("unknown setting: " + name)
		}
	}
	switch name {
	case "Backtrace":
		Settings.Backtrace = ToBool(a[1])
	case "Trace":
		Settings.Trace = ToBool(a[1])
		SetTrace(Settings.Trace)
	case "TracePrint":
		Settings.TracePrint = ToBool(a[1])
		TracePrint = Settings.TracePrint
	case "DivisionScale":
		panic("DivisionScale is fixed at 16")
	default:
		panic("unknown setting: " + name)
	}
	return true
}

func init() {
	Declare(&Globalenv, &Declaration{
		"settings", "reads or changes an interpreter setting",
		0, 2,
		[]DeclarationParameter{
			DeclarationParameter{"key", "string", "name of the setting"},
			DeclarationParameter{"value", "any", "new value"},
		}, "any",
		ChangeSettings,
	})
}
