// Package bridge is the call-and-signal boundary between host code and
// the dynamically typed evaluator. Host callers use it to invoke Lisp
// functions with any number of arguments, build list values, validate
// dynamic values before use, and raise tagged error conditions that
// unwind through the evaluator's non-local transfer rather than the
// host's normal return discipline.
//
// Everything here operates on the opaque lisp.Object handle. The only
// evaluator capabilities consumed are the ones in Kernel; the concrete
// runtime lives in internal/eval.
package bridge

import "github.com/rowhit/remacs/internal/lisp"

// Kernel is the narrow set of evaluator primitives the bridge needs.
// *eval.Runtime implements it; tests substitute a recording fake.
type Kernel interface {
	// Apply invokes frame[0] on frame[1:]. The frame is dead after the
	// call: the callee may mutate evaluator state or signal, so the
	// slice must not be retained or reused.
	Apply(frame []lisp.Object) lisp.Object

	// Signal transfers control to the innermost handler matching sym.
	// It returns only for the reserved quit condition; for every
	// condition the bridge raises it never returns.
	Signal(sym, data lisp.Object) lisp.Object

	// MakeString allocates an evaluator string holding exactly these
	// bytes. The string is an independent copy.
	MakeString(b []byte) lisp.Object

	// EmitMessage writes to the echo area and, when log is set,
	// appends to the message log. format is interpolated with obj in
	// place of %s. Never signals.
	EmitMessage(format string, obj lisp.Object, log bool)

	// SlotValue reads one entry of the write-once slot index table.
	SlotValue(field string) (lisp.Object, bool)

	// Intern resolves a name in the evaluator's symbol table.
	Intern(name string) lisp.Object
}
