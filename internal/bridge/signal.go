package bridge

import (
	"github.com/rowhit/remacs/internal/config"
	"github.com/rowhit/remacs/internal/lisp"
)

// Raise signals sym with the data values folded into a list. Like
// Kernel.Signal but never returns: it must not be used for the quit
// condition, the only one the signal primitive can return from.
func Raise(k Kernel, sym lisp.Object, data ...lisp.Object) {
	k.Signal(sym, lisp.ListOf(data...))
	panic("bridge: signal returned")
}

// WrongType raises wrong-type-argument with the failed predicate
// symbol and the offending value.
func WrongType(k Kernel, predSym, value lisp.Object) {
	Raise(k, k.Intern(config.WrongTypeArgName), predSym, value)
}

// OutOfRange raises args-out-of-range with the offending values. The
// caller has already determined the violation.
func OutOfRange(k Kernel, data ...lisp.Object) {
	Raise(k, k.Intern(config.ArgsOutOfRangeName), data...)
}
