/*
Copyright (C) 2023-2026  Carl-Philip Hänsch

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
	numtower: a scheme shell around a mixed precision numeric tower

	https://pkelchte.wordpress.com/2013/12/31/scm-go/

*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "path/filepath"
import "github.com/dc0d/onexit"
import "github.com/fsnotify/fsnotify"
import "golang.org/x/xerrors"
import "github.com/launix-de/numtower/scm"

var IOEnv scm.Env

func readScript(filename string) string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		panic(xerrors.Errorf("cannot load script %s: %w", filename, err))
	}
	return string(bytes)
}

// scriptEnv is the namespace of one imported file; defines fall through to IOEnv
func scriptEnv(path, filename string) *scm.Env {
	wd := filepath.Dir(filename)
	return &scm.Env{
		Vars: scm.Vars{
			"__DIR__":  path,
			"__FILE__": filename,
			"import":   getImport(wd),
			"watch":    getWatch(wd),
		},
		Outer:    &IOEnv,
		Nodefine: true,
	}
}

func resolve(path string, name scm.Scmer) string {
	filename := scm.String(name)
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(path, filename)
}

func getImport(path string) func(a ...scm.Scmer) scm.Scmer {
	return func(a ...scm.Scmer) scm.Scmer {
		filename := resolve(path, a[0])
		return scm.EvalAll(filename, readScript(filename), scriptEnv(path, filename))
	}
}

func getWatch(path string) func(a ...scm.Scmer) scm.Scmer {
	return func(a ...scm.Scmer) scm.Scmer {
		filename := resolve(path, a[0])
		reread := func() {
			content := readScript(filename)
			if len(a) > 1 {
				scm.Apply(a[1], content)
			} else {
				scm.EvalAll(filename, content, scriptEnv(path, filename))
			}
		}
		reread() // read once at the beginning in sync
		// watch for changes
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			panic(xerrors.Errorf("cannot watch %s: %w", filename, err))
		}
		onexit.Register(func() { watcher.Close() })
		go func() {
			for {
				select {
				case _, ok := <-watcher.Events:
					if !ok {
						return
					}
					// flush all other events
					for {
						time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
						select {
						case <-watcher.Events:
							// ignore
						default:
							goto to_reread
						}
					}
				to_reread:
					// now reread the file
					func() {
						defer func() {
							if err := recover(); err != nil {
								// error happens during reload: log to console
								scm.PrintError(err)
							}
						}()
						reread()
					}()
					watcher.Add(filename) // text editors rename, so we have to rewatch
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					fmt.Println("watch", filename+":", err)
				}
			}
		}()
		err = watcher.Add(filename)
		if err != nil {
			panic(xerrors.Errorf("cannot watch %s: %w", filename, err))
		}
		return true
	}
}

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func setupIO(wd string) {
	// define some IO functions (scm will not provide them since it is sandboxable)
	IOEnv = scm.Env{
		Vars:     scm.Vars{},
		Outer:    &scm.Globalenv,
		Nodefine: true, // other defines go into Globalenv
	}
	scm.DeclareTitle("IO")
	scm.Declare(&IOEnv, &scm.Declaration{
		Name:         "print",
		Desc:         "Prints values to stdout (only in IO environment)",
		MinParameter: 1, MaxParameter: 1000,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "value...", Type: "any", Desc: "values to print"},
		},
		Returns: "bool",
		Fn: func(a ...scm.Scmer) scm.Scmer {
			for _, s := range a {
				fmt.Print(scm.String(s))
			}
			fmt.Println()
			return true
		},
	})
	scm.Declare(&IOEnv, &scm.Declaration{
		Name:         "env",
		Desc:         "returns the content of a environment variable",
		MinParameter: 1, MaxParameter: 2,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "var", Type: "string", Desc: "envvar"},
			scm.DeclarationParameter{Name: "default", Type: "string", Desc: "default if the env is not found"},
		},
		Returns: "string",
		Fn: func(a ...scm.Scmer) scm.Scmer {
			if len(a) > 1 {
				if val, ok := os.LookupEnv(scm.String(a[0])); ok {
					return val
				}
				return a[1]
			}
			return os.Getenv(scm.String(a[0]))
		},
	})
	scm.Declare(&IOEnv, &scm.Declaration{
		Name:         "import",
		Desc:         "Imports a .scm file into current namespace",
		MinParameter: 1, MaxParameter: 1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "filename", Type: "string", Desc: "filename relative to folder of source file"},
		},
		Returns: "any",
		Fn:      getImport(wd),
	})
	scm.Declare(&IOEnv, &scm.Declaration{
		Name:         "watch",
		Desc:         "Loads a file and evaluates it or hands its content to the callback. Whenever the file changes on disk, it is loaded again.",
		MinParameter: 1, MaxParameter: 2,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "filename", Type: "string", Desc: "filename relative to folder of source file"},
			scm.DeclarationParameter{Name: "updatehandler", Type: "func", Desc: "handler that receives the file content func(content)"},
		},
		Returns: "bool",
		Fn:      getWatch(wd),
	})
}

func main() {
	fmt.Print(`numtower Copyright (C) 2023-2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute scm command")

	wd, _ := os.Getwd() // libraries are relative to working directory... or change with -wd PATH
	flag.StringVar(&wd, "wd", wd, "Working Directory for (import) and (watch) (Default: .)")

	flag.BoolVar(&scm.Settings.Trace, "trace", false, "Write a trace_*.json of all builtin calls")
	flag.BoolVar(&scm.Settings.Backtrace, "backtrace", false, "Print go stack traces of errors")

	docs := ""
	flag.StringVar(&docs, "docs", "", "Write markdown documentation of all builtins into this folder and exit")

	flag.Parse()
	imports := flag.Args()

	setupIO(wd)
	scm.InitSettings()

	if docs != "" {
		if err := scm.WriteDocumentation(docs); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("documentation written to " + docs)
		return
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		exitroutine()
		os.Exit(1)
	})()

	// load scripts from command line
	for _, scmfile := range imports {
		fmt.Println("Loading " + scmfile + " ...")
		IOEnv.Vars["import"].(func(...scm.Scmer) scm.Scmer)(scmfile)
	}
	for _, command := range commands {
		fmt.Println("Executing " + command + " ...")
		fmt.Println(scm.EvalLine(command, &IOEnv))
	}
	if len(commands) > 0 {
		exitroutine()
		return
	}

	fmt.Print(`

    Type (help) to show help

`)
	// REPL shell
	scm.Repl(&IOEnv)

	// normal shutdown
	exitroutine()
}

func exitroutine() {
	fmt.Println("Exit procedure...")
	if scm.ReplInstance != nil {
		// in case it dosen't exit properly
		scm.ReplInstance.Close()
	}
	scm.SetTrace(false)
	fmt.Println("Exit procedure finished")
}
