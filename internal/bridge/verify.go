package bridge

import "github.com/rowhit/remacs/internal/lisp"

// Verify checks value against pred and raises wrong-type-argument
// with data [predSym, value] on failure. A no-op when pred holds.
func Verify(k Kernel, pred func(lisp.Object) bool, predSym, value lisp.Object) {
	if !pred(value) {
		WrongType(k, predSym, value)
	}
}

// CheckArray requires an indexable sequence (string or vector).
func CheckArray(k Kernel, value lisp.Object) {
	Verify(k, lisp.IsArray, k.Intern("arrayp"), value)
}

// CheckString requires a string.
func CheckString(k Kernel, value lisp.Object) {
	Verify(k, lisp.IsString, k.Intern("stringp"), value)
}

// CheckChar requires a character code in [0, MaxChar]. The offending
// integer is boxed as a dynamic value in the raised data.
func CheckChar(k Kernel, n int64) {
	if !lisp.CharInRange(n) {
		WrongType(k, k.Intern("characterp"), &lisp.Integer{Value: n})
	}
}
