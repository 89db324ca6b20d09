package bridge

import "github.com/rowhit/remacs/internal/lisp"

// Message forwards a formatted string plus one dynamic value to the
// echo area. Side effect only; never signals.
func Message(k Kernel, format string, obj lisp.Object, shouldLog bool) {
	k.EmitMessage(format, obj, shouldLog)
}
