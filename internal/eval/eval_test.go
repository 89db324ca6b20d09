package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rowhit/remacs/internal/bridge"
	"github.com/rowhit/remacs/internal/lisp"
)

func evalOK(t *testing.T, rt *Runtime, src string) lisp.Object {
	t.Helper()
	result, err := rt.EvalString(src)
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	return result
}

// evalCond evaluates src expecting a signaled condition.
func evalCond(t *testing.T, rt *Runtime, src string) *Condition {
	t.Helper()
	var cond *Condition
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ok bool
			cond, ok = r.(*Condition)
			if !ok {
				panic(r)
			}
		}()
		if _, err := rt.EvalString(src); err != nil {
			t.Fatalf("read %q: %v", src, err)
		}
	}()
	if cond == nil {
		t.Fatalf("%q: expected a condition, evaluation returned", src)
	}
	return cond
}

func wantInt(t *testing.T, obj lisp.Object, n int64) {
	t.Helper()
	i, ok := obj.(*lisp.Integer)
	if !ok || i.Value != n {
		t.Errorf("got %s, want %d", obj.Inspect(), n)
	}
}

func TestSelfEvaluating(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, "42"), 42)
	if got := evalOK(t, rt, `"hi"`); got.(*lisp.Str).String() != "hi" {
		t.Errorf("string literal = %s", got.Inspect())
	}
	if got := evalOK(t, rt, "nil"); !lisp.IsNil(got) {
		t.Errorf("nil = %s", got.Inspect())
	}
	if got := evalOK(t, rt, "t"); got != lisp.Object(lisp.T) {
		t.Errorf("t = %s", got.Inspect())
	}
}

func TestArithmeticAndCompare(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, "(+ 1 2 3)"), 6)
	wantInt(t, evalOK(t, rt, "(- 10 4)"), 6)
	wantInt(t, evalOK(t, rt, "(* 2 3 4)"), 24)
	if got := evalOK(t, rt, "(< 1 2)"); got != lisp.Object(lisp.T) {
		t.Errorf("(< 1 2) = %s", got.Inspect())
	}
	f := evalOK(t, rt, "(+ 1 0.5)").(*lisp.Float)
	if f.Value != 1.5 {
		t.Errorf("(+ 1 0.5) = %g", f.Value)
	}
}

func TestListPrimitives(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, "(car (cons 1 2))"), 1)
	wantInt(t, evalOK(t, rt, "(cdr (cons 1 2))"), 2)
	wantInt(t, evalOK(t, rt, "(length (list 1 2 3))"), 3)
	wantInt(t, evalOK(t, rt, "(nth 1 '(10 20 30))"), 20)
	if got := evalOK(t, rt, "(car nil)"); !lisp.IsNil(got) {
		t.Errorf("(car nil) = %s", got.Inspect())
	}
}

func TestSpecialForms(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, "(if nil 1 2)"), 2)
	wantInt(t, evalOK(t, rt, "(progn 1 2 3)"), 3)
	wantInt(t, evalOK(t, rt, "(let ((x 5) (y 2)) (+ x y))"), 7)
	wantInt(t, evalOK(t, rt, `(progn
		(setq n 0)
		(while (< n 5) (setq n (+ n 1)))
		n)`), 5)
	if got := evalOK(t, rt, "(quote sym)"); got != rt.Intern("sym") {
		t.Errorf("quote = %s", got.Inspect())
	}
	wantInt(t, evalOK(t, rt, "(or nil 3)"), 3)
	if got := evalOK(t, rt, "(and 1 nil 2)"); !lisp.IsNil(got) {
		t.Errorf("and = %s", got.Inspect())
	}
}

func TestLetBindingsRestoredAfterSignal(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	evalOK(t, rt, "(setq x 1)")
	evalCond(t, rt, "(let ((x 99)) (car 5))")
	wantInt(t, evalOK(t, rt, "x"), 1)
}

func TestDefunAndCalls(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	evalOK(t, rt, "(defun add2 (a b) (+ a b))")
	wantInt(t, evalOK(t, rt, "(add2 3 4)"), 7)
	wantInt(t, evalOK(t, rt, "(funcall 'add2 1 2)"), 3)
	wantInt(t, evalOK(t, rt, "(apply 'add2 '(5 6))"), 11)
	wantInt(t, evalOK(t, rt, "((lambda (x) (* x x)) 6)"), 36)
}

func TestWrongNumberOfArguments(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	evalOK(t, rt, "(defun one (a) a)")
	cond := evalCond(t, rt, "(one 1 2)")
	if cond.Sym != lisp.Object(QWrongNumberOfArguments) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
}

func TestVoidVariableAndFunction(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	if cond := evalCond(t, rt, "no-such-var"); cond.Sym != lisp.Object(QVoidVariable) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
	if cond := evalCond(t, rt, "(no-such-fn 1)"); cond.Sym != lisp.Object(QVoidFunction) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
}

func TestWrongTypeSignalData(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	cond := evalCond(t, rt, "(car 5)")
	if cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Fatalf("sym = %s", cond.Sym.Inspect())
	}
	elems, _ := lisp.ListElems(cond.Data)
	if len(elems) != 2 || elems[0] != lisp.Object(QListp) {
		t.Errorf("data = %s, want (listp 5)", cond.Data.Inspect())
	}
	wantInt(t, elems[1], 5)
}

func TestConditionCaseCatchesSubtype(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	// wrong-type-argument inherits from error, so an error clause
	// catches it.
	got := evalOK(t, rt, "(condition-case err (car 5) (error (car err)))")
	if got != lisp.Object(QWrongTypeArgument) {
		t.Errorf("handler saw %s, want wrong-type-argument", got.Inspect())
	}
}

func TestConditionCaseExactMatch(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt,
		"(condition-case nil (signal 'wrong-type-argument nil) (wrong-type-argument 7))"), 7)
}

func TestConditionCaseNoMatchPropagates(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	cond := evalCond(t, rt, "(condition-case nil (car 5) (args-out-of-range 1))")
	if cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
}

func TestConditionCaseBodyValue(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, "(condition-case nil 9 (error 1))"), 9)
}

func TestErrorBuiltin(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	cond := evalCond(t, rt, `(error "bad value: %d" 5)`)
	if cond.Sym != lisp.Object(QError) {
		t.Fatalf("sym = %s", cond.Sym.Inspect())
	}
	elems, _ := lisp.ListElems(cond.Data)
	s := elems[0].(*lisp.Str)
	if s.String() != "bad value: 5" || len(s.Bytes) != 13 {
		t.Errorf("message = %q (%d bytes)", s.String(), len(s.Bytes))
	}
	if !strings.Contains(cond.Error(), "bad value: 5") {
		t.Errorf("Error() = %q", cond.Error())
	}
}

func TestQuitInhibited(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	rt.InhibitQuit(true)
	if got := rt.Signal(QQuit, lisp.Nil); !lisp.IsNil(got) {
		t.Errorf("inhibited quit = %v, want nil", got)
	}
	rt.InhibitQuit(false)
	cond := evalCond(t, rt, "(signal 'quit nil)")
	if cond.Sym != lisp.Object(QQuit) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
}

func TestArefBoundsAndTypes(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	wantInt(t, evalOK(t, rt, `(aref "abc" 1)`), 'b')
	wantInt(t, evalOK(t, rt, "(aref [10 20] 0)"), 10)

	cond := evalCond(t, rt, `(aref "abc" 9)`)
	if cond.Sym != lisp.Object(QArgsOutOfRange) {
		t.Errorf("sym = %s, want args-out-of-range", cond.Sym.Inspect())
	}
	cond = evalCond(t, rt, "(aref 5 0)")
	if cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Errorf("sym = %s, want wrong-type-argument", cond.Sym.Inspect())
	}
}

func TestCharToString(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	if got := evalOK(t, rt, "(char-to-string ?a)").(*lisp.Str); got.String() != "a" {
		t.Errorf("char-to-string = %q", got.String())
	}
	cond := evalCond(t, rt, "(char-to-string -1)")
	if cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Fatalf("sym = %s", cond.Sym.Inspect())
	}
	elems, _ := lisp.ListElems(cond.Data)
	if elems[0] != lisp.Object(QCharacterp) {
		t.Errorf("predicate = %s, want characterp", elems[0].Inspect())
	}
}

func TestFormatBuiltin(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	got := evalOK(t, rt, `(format "%s=%d 0x%x %c%%" "n" 42 255 ?!)`).(*lisp.Str)
	if got.String() != "n=42 0xff !%" {
		t.Errorf("format = %q", got.String())
	}
	cond := evalCond(t, rt, `(format "%d" "nope")`)
	if cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Errorf("sym = %s", cond.Sym.Inspect())
	}
}

func TestMessageLogging(t *testing.T) {
	var buf bytes.Buffer
	rt := New(WithEchoWriter(&buf))
	evalOK(t, rt, `(message "loaded %d forms" 3)`)
	evalOK(t, rt, `(princ "transient")`)

	if !strings.Contains(buf.String(), "loaded 3 forms") {
		t.Errorf("echo area missing message: %q", buf.String())
	}
	log := rt.Messages()
	if len(log) != 1 || log[0] != "loaded 3 forms" {
		t.Errorf("message log = %v, want only the logged message", log)
	}
}

func TestMessageLogBounded(t *testing.T) {
	var buf bytes.Buffer
	rt := New(WithEchoWriter(&buf), WithMessageLogSize(2))
	for i := 0; i < 5; i++ {
		rt.EmitMessage("m", nil, true)
	}
	if got := len(rt.Messages()); got != 2 {
		t.Errorf("log size = %d, want 2", got)
	}
}

func TestSymbolsAndProperties(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	if got := evalOK(t, rt, `(intern "error")`); got != lisp.Object(QError) {
		t.Errorf("intern returned a fresh symbol for a builtin name")
	}
	if got := evalOK(t, rt, "(symbol-name 'foo)").(*lisp.Str); got.String() != "foo" {
		t.Errorf("symbol-name = %q", got.String())
	}
	wantInt(t, evalOK(t, rt, "(progn (put 'foo 'weight 9) (get 'foo 'weight))"), 9)
	// error-conditions chain is itself reachable from Lisp.
	got := evalOK(t, rt, "(get 'wrong-type-argument 'error-conditions)")
	elems, _ := lisp.ListElems(got)
	if len(elems) != 2 || elems[0] != lisp.Object(QWrongTypeArgument) || elems[1] != lisp.Object(QError) {
		t.Errorf("error-conditions = %s", got.Inspect())
	}
}

func TestBufferSlots(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	if got := evalOK(t, rt, "(buffer-name)").(*lisp.Str); got.String() != "*scratch*" {
		t.Errorf("buffer-name = %q", got.String())
	}
	got := evalOK(t, rt, `(buffer-name (get-buffer-create "notes"))`).(*lisp.Str)
	if got.String() != "notes" {
		t.Errorf("buffer-name = %q", got.String())
	}
	// Same name returns the same live buffer.
	if evalOK(t, rt, `(eq (get-buffer-create "notes") (get-buffer-create "notes"))`) != lisp.Object(lisp.T) {
		t.Errorf("get-buffer-create must be idempotent per name")
	}
}

func TestSlotIndexThroughRuntime(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	if got := bridge.SlotIndex(rt, "name"); got != 0 {
		t.Errorf("slot name = %d, want 0", got)
	}
	if got := bridge.SlotIndex(rt, "major-mode"); got != 1 {
		t.Errorf("slot major-mode = %d, want 1", got)
	}
	var cond *Condition
	func() {
		defer func() {
			cond, _ = recover().(*Condition)
		}()
		bridge.SlotIndex(rt, "no-such-slot")
	}()
	if cond == nil || cond.Sym != lisp.Object(QWrongTypeArgument) {
		t.Errorf("missing slot must raise wrong-type-argument")
	}
}

func TestSessionID(t *testing.T) {
	rt := New(WithEchoWriter(&bytes.Buffer{}))
	got := evalOK(t, rt, "(session-id)").(*lisp.Str)
	if got.String() != rt.SessionID() || got.String() == "" {
		t.Errorf("session-id = %q", got.String())
	}
}
