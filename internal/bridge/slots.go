package bridge

import "github.com/rowhit/remacs/internal/lisp"

// SlotIndex resolves a named per-object storage slot to its small
// integer index via the runtime's write-once table. A missing entry or
// one that is not a non-negative integer raises wrong-type-argument.
func SlotIndex(k Kernel, field string) int {
	val, ok := k.SlotValue(field)
	if !ok {
		val = lisp.Nil
	}
	if !lisp.IsNatnum(val) {
		WrongType(k, k.Intern("natnump"), val)
	}
	return int(val.(*lisp.Integer).Value)
}
