// Package symgen generates the evaluator's starting symbol table from
// bridge.DefineSymbol call sites. The markers do nothing at runtime;
// this package is their build-time consumer.
package symgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"sort"
	"strconv"
	"strings"
)

// SymbolDef is one pre-interned symbol: its Lisp name and the Go
// variable holding it.
type SymbolDef struct {
	Name    string
	VarName string
}

// ScanFile collects DefineSymbol markers from one parsed file. Only
// calls with a constant string first argument count; anything else is
// reported so a typo cannot silently drop a symbol.
func ScanFile(file *ast.File) ([]SymbolDef, error) {
	var defs []SymbolDef
	var scanErr error
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "DefineSymbol" {
			return true
		}
		if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "bridge" {
			return true
		}
		if len(call.Args) != 2 {
			scanErr = fmt.Errorf("DefineSymbol needs exactly 2 arguments")
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok {
			scanErr = fmt.Errorf("DefineSymbol name must be a string literal")
			return true
		}
		name, err := strconv.Unquote(lit.Value)
		if err != nil {
			scanErr = fmt.Errorf("DefineSymbol name %s: %w", lit.Value, err)
			return true
		}
		defs = append(defs, SymbolDef{Name: name, VarName: VarName(name)})
		return true
	})
	return defs, scanErr
}

// VarName maps a Lisp symbol name to its Go variable: each hyphenated
// word capitalized, prefixed with Q.
func VarName(name string) string {
	var out strings.Builder
	out.WriteByte('Q')
	for _, word := range strings.Split(name, "-") {
		if word == "" {
			continue
		}
		out.WriteString(strings.ToUpper(word[:1]))
		out.WriteString(word[1:])
	}
	return out.String()
}

// Generate renders the symbol table file. Output is sorted by name so
// regeneration is deterministic; duplicate markers collapse.
func Generate(pkg string, defs []SymbolDef) ([]byte, error) {
	seen := make(map[string]SymbolDef)
	for _, d := range defs {
		if prev, ok := seen[d.Name]; ok && prev.VarName != d.VarName {
			return nil, fmt.Errorf("symbol %q declared with conflicting variables", d.Name)
		}
		seen[d.Name] = d
	}
	sorted := make([]SymbolDef, 0, len(seen))
	for _, d := range seen {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by symgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import %q\n\n", "github.com/rowhit/remacs/internal/lisp")
	fmt.Fprintf(&buf, "var (\n")
	for _, d := range sorted {
		fmt.Fprintf(&buf, "\t%s = lisp.NewSymbol(%q)\n", d.VarName, d.Name)
	}
	fmt.Fprintf(&buf, ")\n\n")
	fmt.Fprintf(&buf, "// builtinSymbols seeds every Runtime's obarray.\n")
	fmt.Fprintf(&buf, "var builtinSymbols = []*lisp.Symbol{\n")
	for _, d := range sorted {
		fmt.Fprintf(&buf, "\t%s,\n", d.VarName)
	}
	fmt.Fprintf(&buf, "}\n")
	return format.Source(buf.Bytes())
}
