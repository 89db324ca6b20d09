package symgen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func parse(t *testing.T, src string) []SymbolDef {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "markers.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defs, err := ScanFile(file)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return defs
}

const markerSrc = `package eval

import "github.com/rowhit/remacs/internal/bridge"

func registerSymbols() {
	bridge.DefineSymbol("error", QError)
	bridge.DefineSymbol("wrong-type-argument", QWrongTypeArgument)
	other.DefineSymbol("not-ours", x)
	helper("error")
}
`

func TestScanFileFindsMarkers(t *testing.T) {
	defs := parse(t, markerSrc)
	if len(defs) != 2 {
		t.Fatalf("defs = %v, want 2 markers", defs)
	}
	if defs[0].Name != "error" || defs[0].VarName != "QError" {
		t.Errorf("defs[0] = %+v", defs[0])
	}
	if defs[1].Name != "wrong-type-argument" || defs[1].VarName != "QWrongTypeArgument" {
		t.Errorf("defs[1] = %+v", defs[1])
	}
}

func TestScanFileRejectsNonLiteral(t *testing.T) {
	src := `package eval

func f(name string) {
	bridge.DefineSymbol(name, QError)
}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "bad.go", src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ScanFile(file); err == nil {
		t.Errorf("non-literal name must be rejected")
	}
}

func TestVarName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"error", "QError"},
		{"wrong-type-argument", "QWrongTypeArgument"},
		{"args-out-of-range", "QArgsOutOfRange"},
		{"characterp", "QCharacterp"},
	}
	for _, tt := range tests {
		if got := VarName(tt.name); got != tt.want {
			t.Errorf("VarName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGenerateSortedAndDeduped(t *testing.T) {
	defs := []SymbolDef{
		{Name: "quit", VarName: "QQuit"},
		{Name: "error", VarName: "QError"},
		{Name: "quit", VarName: "QQuit"},
	}
	src, err := Generate("eval", defs)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "// Code generated by symgen; DO NOT EDIT.") {
		t.Errorf("missing generated header")
	}
	errIdx := strings.Index(out, `lisp.NewSymbol("error")`)
	quitIdx := strings.Index(out, `lisp.NewSymbol("quit")`)
	if errIdx < 0 || quitIdx < 0 || errIdx > quitIdx {
		t.Errorf("output not sorted:\n%s", out)
	}
	if strings.Count(out, `lisp.NewSymbol("quit")`) != 1 {
		t.Errorf("duplicate marker not collapsed:\n%s", out)
	}
}

func TestGenerateConflictingVars(t *testing.T) {
	defs := []SymbolDef{
		{Name: "error", VarName: "QError"},
		{Name: "error", VarName: "QErr"},
	}
	if _, err := Generate("eval", defs); err == nil {
		t.Errorf("conflicting variables for one name must fail")
	}
}
