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

import "io"
import "os"
import "fmt"
import "sync"
import "time"
import "encoding/json"

// Tracefile writes Chrome trace events (chrome://tracing, ui.perfetto.dev).
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	m       sync.Mutex
}

type traceEvent struct {
	Name  string `json:"name"`
	Cat   string `json:"cat"`
	Phase string `json:"ph"`
	Ts    int64  `json:"ts"`
	Pid   int    `json:"pid"`
	Tid   int    `json:"tid"`
	Scope string `json:"s"`
}

var Trace *Tracefile // default trace: set to not nil if you want to trace
var TracePrint bool  // whether to print traces to stdout

func SetTrace(on bool) { // sets Trace to nil or a value
	if Trace != nil {
		Trace.Close()
		Trace = nil
	}
	if on {
		f, err := os.Create(os.Getenv("NUMTOWER_TRACEDIR") + "trace_" + fmt.Sprint(time.Now().Unix()) + ".json")
		if err != nil {
			panic(err)
		}
		Trace = NewTrace(f)
	}
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	return &Tracefile{isFirst: true, file: file}
}

func (t *Tracefile) Close() {
	t.m.Lock()
	defer t.m.Unlock()
	t.file.Write([]byte("]"))
	t.file.Close()
}

// Duration records f as a begin/end pair.
func (t *Tracefile) Duration(name string, cat string, f func()) {
	t.Event(name, cat, "B")
	defer t.Event(name, cat, "E")
	f()
}

func (t *Tracefile) Event(name string, cat string, typ string) {
	t.write(traceEvent{name, cat, typ, time.Since(start).Microseconds(), 0, 0, "g"})
}

func (t *Tracefile) write(ev traceEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	t.m.Lock()
	defer t.m.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write(b)
}

var start time.Time = time.Now()
