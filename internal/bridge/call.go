package bridge

import "github.com/rowhit/remacs/internal/lisp"

// Call invokes fn with any number of arguments, positionally and in
// order. The frame [fn, args...] is built fresh for this one
// invocation. The callee may signal; treat Call as possibly never
// returning.
func Call(k Kernel, fn lisp.Object, args ...lisp.Object) lisp.Object {
	frame := make([]lisp.Object, 1+len(args))
	frame[0] = fn
	copy(frame[1:], args)
	return k.Apply(frame)
}

// CallRaw applies an already assembled frame, for call sites that
// built one themselves (re-entrant calls). The frame must hold the
// callee at index 0 and is dead after the call.
func CallRaw(k Kernel, frame []lisp.Object) lisp.Object {
	return k.Apply(frame)
}
