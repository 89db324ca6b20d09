package parser

import (
	"testing"

	"github.com/rowhit/remacs/internal/lexer"
	"github.com/rowhit/remacs/internal/lisp"
)

// testInterner is a standalone obarray for reader tests.
type testInterner struct {
	syms map[string]*lisp.Symbol
}

func newTestInterner() *testInterner {
	m := map[string]*lisp.Symbol{"nil": lisp.Nil, "t": lisp.T}
	return &testInterner{syms: m}
}

func (ti *testInterner) Intern(name string) lisp.Object {
	if s, ok := ti.syms[name]; ok {
		return s
	}
	s := lisp.NewSymbol(name)
	ti.syms[name] = s
	return s
}

func read(t *testing.T, src string) lisp.Object {
	t.Helper()
	p := New(lexer.New(src), newTestInterner())
	form, err := p.Read()
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	return form
}

func readErr(t *testing.T, src string) error {
	t.Helper()
	p := New(lexer.New(src), newTestInterner())
	_, err := p.Read()
	if err == nil {
		t.Fatalf("read %q: expected error", src)
	}
	return err
}

func TestReadAtoms(t *testing.T) {
	if n := read(t, "42").(*lisp.Integer); n.Value != 42 {
		t.Errorf("int = %d", n.Value)
	}
	if f := read(t, "2.5").(*lisp.Float); f.Value != 2.5 {
		t.Errorf("float = %g", f.Value)
	}
	if s := read(t, `"hi"`).(*lisp.Str); s.String() != "hi" {
		t.Errorf("string = %q", s.String())
	}
	if c := read(t, "?a").(*lisp.Integer); c.Value != 'a' {
		t.Errorf("char = %d", c.Value)
	}
	if sym := read(t, "foo").(*lisp.Symbol); sym.Name != "foo" {
		t.Errorf("symbol = %q", sym.Name)
	}
	if !lisp.IsNil(read(t, "nil")) {
		t.Errorf("nil must read as the canonical nil")
	}
}

func TestReadList(t *testing.T) {
	form := read(t, "(a b c)")
	elems, ok := lisp.ListElems(form)
	if !ok || len(elems) != 3 {
		t.Fatalf("list = %s", form.Inspect())
	}
	if form.Inspect() != "(a b c)" {
		t.Errorf("Inspect = %q", form.Inspect())
	}
	if !lisp.IsNil(read(t, "()")) {
		t.Errorf("() must read as nil")
	}
}

func TestReadDottedPair(t *testing.T) {
	form := read(t, "(a . b)").(*lisp.Cons)
	if form.Car.Inspect() != "a" || form.Cdr.Inspect() != "b" {
		t.Errorf("pair = %s", form.Inspect())
	}
	// Improper tail inside a longer list.
	form = read(t, "(a b . c)").(*lisp.Cons)
	if form.Inspect() != "(a b . c)" {
		t.Errorf("Inspect = %q", form.Inspect())
	}
}

func TestReadQuote(t *testing.T) {
	form := read(t, "'x")
	elems, _ := lisp.ListElems(form)
	if len(elems) != 2 || elems[0].Inspect() != "quote" || elems[1].Inspect() != "x" {
		t.Errorf("'x = %s, want (quote x)", form.Inspect())
	}
}

func TestReadVector(t *testing.T) {
	v := read(t, "[1 two \"three\"]").(*lisp.Vector)
	if len(v.Elems) != 3 {
		t.Fatalf("vector = %s", v.Inspect())
	}
}

func TestReadNested(t *testing.T) {
	form := read(t, "(let ((x 5)) (+ x 1))")
	if form.Inspect() != "(let ((x 5)) (+ x 1))" {
		t.Errorf("Inspect = %q", form.Inspect())
	}
}

func TestInternSharing(t *testing.T) {
	ti := newTestInterner()
	p := New(lexer.New("(foo foo)"), ti)
	form, err := p.Read()
	if err != nil {
		t.Fatal(err)
	}
	elems, _ := lisp.ListElems(form)
	if elems[0] != elems[1] {
		t.Errorf("same name must intern to the same symbol")
	}
}

func TestReadAll(t *testing.T) {
	p := New(lexer.New("1 2 3"), newTestInterner())
	forms, err := p.ReadAll()
	if err != nil || len(forms) != 3 {
		t.Errorf("ReadAll = %v, %v", forms, err)
	}
}

func TestReadErrors(t *testing.T) {
	readErr(t, "(a b")
	readErr(t, ")")
	readErr(t, "(. b)")
	readErr(t, "(a . b c)")
	readErr(t, "[1 2")
	readErr(t, "")
}
