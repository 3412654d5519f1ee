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

import "os"
import "fmt"
import "strings"
import "path/filepath"
import "github.com/launix-de/numtower/numeric"

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // any | string | number | int | bool | func | list | symbol | nil
	Fn           func(...Scmer) Scmer
}

type DeclarationParameter struct {
	Name string
	Type string // any | string | number | int | bool | func | list | symbol | nil
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)
var declarations_hash map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

func Declare(env *Env, def *Declaration) {
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
	if def.Fn != nil {
		declarations_hash[fmt.Sprintf("%p", def.Fn)] = def
		env.Vars[Symbol(def.Name)] = def.Fn
	}
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all functions of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type Chapter struct {
		Title string
		Slug  string
		Fns   []*Declaration
	}

	var chapters []*Chapter
	var current *Chapter
	general := &Chapter{Title: "General", Slug: "general"}

	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			current = &Chapter{Title: title, Slug: slugify(title)}
			chapters = append(chapters, current)
			continue
		}
		def, ok := declarations[t]
		if !ok {
			continue
		}
		if current == nil {
			chapters = append(chapters, general)
			current = general
		}
		current.Fns = append(current.Fns, def)
	}

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}

		fmt.Fprintf(f, "# %s\n\n", ch.Title)
		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			fmt.Fprintf(f, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)

			fmt.Fprint(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprint(f, "_This function has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}

			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
		}

		_ = f.Close()
	}

	return nil
}

func types_match(given string, required string) bool {
	if given == "any" {
		return true // be graceful, we can't check it
	}
	if required == "any" {
		return true // this is always allowed
	}
	required_ := strings.Split(required, "|")
	given_ := strings.Split(given, "|")
	for _, r := range required_ {
		for _, g := range given_ {
			if r == g || r == "number" && g == "int" { // we allow int to number but not otherwise
				return true // if any given fits any required, the value is allowed
			}
		}
	}
	return false // not a single match
}

// panics if the code is bad (returns possible datatype, at least "any")
func Validate(val Scmer, require string) string {
	var source_info SourceInfo
	if si, ok := val.(SourceInfo); ok {
		source_info = si
		val = si.value
	}
	switch v := val.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case numeric.Int32, numeric.Int64, numeric.BigInt:
		return "int"
	case numeric.Value:
		return "number"
	case bool:
		return "bool"
	case Proc, func(...Scmer) Scmer:
		return "func"
	case []Scmer:
		if len(v) == 0 {
			return "list"
		}
		var def *Declaration
		if head, ok := v[0].(Symbol); ok {
			switch head {
			case "quote":
				return "any"
			case "lambda":
				if len(v) == 3 {
					Validate(v[2], "any")
				}
				return "func"
			}
			def = declarations[string(head)]
		}
		if def != nil {
			if len(v)-1 < def.MinParameter {
				panic(source_info.String() + ": function " + def.Name + " expects at least " + fmt.Sprintf("%d", def.MinParameter) + " parameters")
			}
			if len(v)-1 > def.MaxParameter {
				panic(source_info.String() + ": function " + def.Name + " expects at most " + fmt.Sprintf("%d", def.MaxParameter) + " parameters")
			}
		}
		for i := 1; i < len(v); i++ {
			subrequired := "any"
			if def != nil && len(def.Params) > 0 {
				j := i - 1 // variadic tails reuse the last parameter
				if j >= len(def.Params) {
					j = len(def.Params) - 1
				}
				subrequired = def.Params[j].Type
			}
			typ := Validate(v[i], subrequired)
			if !types_match(typ, subrequired) {
				panic(fmt.Sprintf("%s: function %s expects parameter %d to be %s, but found value of type %s", source_info.String(), def.Name, i, subrequired, typ))
			}
		}
		if def != nil {
			return def.Returns
		}
	}
	return "any"
}

func Help(fn Scmer) {
	if fn == nil {
		fmt.Println("Available scm functions:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Println("")
				fmt.Println("-- " + title[1:] + " --")
			} else {
				fmt.Println("  " + title + ": " + strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Println("")
		fmt.Println("get further information by typing (help \"functionname\") to get more info")
	} else {
		def := DeclarationForValue(fn)
		if def != nil {
			fmt.Println("Help for: " + def.Name)
			fmt.Println("===")
			fmt.Println("")
			fmt.Println(def.Desc)
			fmt.Println("")
			fmt.Println("Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
			fmt.Println("")
			for _, p := range def.Params {
				fmt.Println(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
			}
			fmt.Println("")
		} else {
			panic("function not found: " + fmt.Sprint(fn))
		}
	}
}

// DeclarationForValue resolves a callable head (symbol or native func) to its Declaration.
func DeclarationForValue(v Scmer) *Declaration {
	switch h := v.(type) {
	case string:
		if d, ok := declarations[h]; ok {
			return d
		}
	case Symbol:
		if d, ok := declarations[string(h)]; ok {
			return d
		}
	case func(...Scmer) Scmer:
		if d, ok := declarations_hash[fmt.Sprintf("%p", h)]; ok {
			return d
		}
	}
	return nil
}

func init() {
	DeclareTitle("Core")
	Declare(&Globalenv, &Declaration{
		"help", "Lists all functions or prints help for a specific function",
		0, 1,
		[]DeclarationParameter{
			DeclarationParameter{"topic", "string", "function to get help for"},
		}, "nil",
		func(a ...Scmer) Scmer {
			if len(a) == 0 {
				Help(nil)
			} else {
				Help(a[0])
			}
			return nil
		},
	})
	Declare(&Globalenv, &Declaration{
		"list", "returns a list containing the parameters as elements",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "value for the list"},
		}, "list",
		func(a ...Scmer) Scmer {
			return append([]Scmer{}, a...)
		},
	})
	Declare(&Globalenv, &Declaration{
		"not", "negates the boolean value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to negate"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return !ToBool(a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"error", "raises an error with the given message",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"message", "any", "error message"},
		}, "nil",
		func(a ...Scmer) Scmer {
			panic(String(a[0]))
		},
	})
}
