// Package eval implements the evaluator runtime: symbol interning,
// the eval/apply loop, the condition system, the echo area, and
// buffers. *Runtime satisfies bridge.Kernel.
package eval

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rowhit/remacs/internal/bridge"
	"github.com/rowhit/remacs/internal/config"
	"github.com/rowhit/remacs/internal/lisp"
)

// Runtime owns all mutable evaluator state. The model is
// single-threaded cooperative: exactly one goroutine runs evaluator
// code, so there is no locking here.
type Runtime struct {
	obarray map[string]*lisp.Symbol

	// slots is the write-once slot index table: field name to a small
	// integer boxed as a dynamic value. Sealed after construction.
	slots  map[string]lisp.Object
	sealed bool

	echo *Echo

	buffers []*Buffer
	current *Buffer

	// inhibitQuit makes the quit condition return from Signal instead
	// of transferring control.
	inhibitQuit bool

	sessionID string
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithEchoWriter redirects echo area output.
func WithEchoWriter(w io.Writer) Option {
	return func(rt *Runtime) { rt.echo.w = w }
}

// WithMessageLogSize bounds the in-memory message log.
func WithMessageLogSize(n int) Option {
	return func(rt *Runtime) { rt.echo.cap = n }
}

func New(opts ...Option) *Runtime {
	rt := &Runtime{
		obarray:   make(map[string]*lisp.Symbol),
		slots:     make(map[string]lisp.Object),
		echo:      newEcho(os.Stderr, config.DefaultMessageLogSize),
		sessionID: uuid.NewString(),
	}
	registerSymbols()
	rt.obarray[lisp.Nil.Name] = lisp.Nil
	rt.obarray[lisp.T.Name] = lisp.T
	for _, sym := range builtinSymbols {
		rt.obarray[sym.Name] = sym
	}
	rt.defineErrorSymbols()
	rt.registerBuiltins()
	rt.registerBufferSlots()
	rt.sealed = true
	rt.current = rt.makeBuffer("*scratch*")
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Intern returns the interned symbol for name, creating it on first
// use.
func (rt *Runtime) Intern(name string) lisp.Object {
	return rt.intern(name)
}

func (rt *Runtime) intern(name string) *lisp.Symbol {
	if sym, ok := rt.obarray[name]; ok {
		return sym
	}
	sym := lisp.NewSymbol(name)
	rt.obarray[name] = sym
	return sym
}

// MakeString allocates an evaluator string holding a copy of b.
func (rt *Runtime) MakeString(b []byte) lisp.Object {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &lisp.Str{Bytes: cp}
}

// SlotValue reads one entry of the slot index table.
func (rt *Runtime) SlotValue(field string) (lisp.Object, bool) {
	v, ok := rt.slots[field]
	return v, ok
}

// registerSlot populates one slot table entry. Only valid during
// construction; the table is read-only afterward.
func (rt *Runtime) registerSlot(field string, index int) {
	if rt.sealed {
		panic("eval: slot table sealed")
	}
	rt.slots[field] = &lisp.Integer{Value: int64(index)}
}

// SessionID identifies this runtime instance in the message log.
func (rt *Runtime) SessionID() string { return rt.sessionID }

// InhibitQuit toggles whether quit signals return instead of
// transferring control.
func (rt *Runtime) InhibitQuit(on bool) { rt.inhibitQuit = on }

var _ bridge.Kernel = (*Runtime)(nil)
