// Command symgen regenerates internal/eval/symbols_gen.go from the
// bridge.DefineSymbol markers in the tree.
//
// Usage: go run ./cmd/symgen [-out file] [patterns...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rowhit/remacs/internal/symgen"
	"golang.org/x/tools/go/packages"
)

func main() {
	out := flag.String("out", "internal/eval/symbols_gen.go", "output file")
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./internal/..."}
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedSyntax | packages.NeedFiles}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symgen: load: %v\n", err)
		os.Exit(1)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}

	var defs []symgen.SymbolDef
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fileDefs, err := symgen.ScanFile(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "symgen: %s: %v\n", pkg.PkgPath, err)
				os.Exit(1)
			}
			defs = append(defs, fileDefs...)
		}
	}
	if len(defs) == 0 {
		fmt.Fprintln(os.Stderr, "symgen: no DefineSymbol markers found")
		os.Exit(1)
	}

	src, err := symgen.Generate("eval", defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "symgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("symgen: wrote %d symbols to %s\n", len(defs), *out)
}
