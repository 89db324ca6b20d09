package lisp

import "github.com/rowhit/remacs/internal/config"

// IsNil reports whether obj is the canonical nil symbol.
func IsNil(obj Object) bool {
	s, ok := obj.(*Symbol)
	return ok && s == Nil
}

// Truthy reports the Lisp boolean reading of obj: everything except
// nil is true.
func Truthy(obj Object) bool { return !IsNil(obj) }

// Bool maps a host boolean to T or Nil.
func Bool(b bool) Object {
	if b {
		return T
	}
	return Nil
}

func IsCons(obj Object) bool {
	_, ok := obj.(*Cons)
	return ok
}

func IsSymbol(obj Object) bool {
	_, ok := obj.(*Symbol)
	return ok
}

func IsString(obj Object) bool {
	_, ok := obj.(*Str)
	return ok
}

func IsInteger(obj Object) bool {
	_, ok := obj.(*Integer)
	return ok
}

func IsVector(obj Object) bool {
	_, ok := obj.(*Vector)
	return ok
}

// IsArray reports whether obj is an indexable sequence with O(1)
// element access: a string or a vector.
func IsArray(obj Object) bool {
	return IsString(obj) || IsVector(obj)
}

// IsCharacter reports whether obj is an integer in the valid character
// code range [0, MaxChar].
func IsCharacter(obj Object) bool {
	i, ok := obj.(*Integer)
	return ok && CharInRange(i.Value)
}

// CharInRange checks the raw character code bounds.
func CharInRange(n int64) bool {
	return n >= 0 && n <= config.MaxChar
}

// IsNatnum reports whether obj is a non-negative integer.
func IsNatnum(obj Object) bool {
	i, ok := obj.(*Integer)
	return ok && i.Value >= 0
}

// Eq is pointer/value identity: symbols and cells by pointer,
// integers by value (fixnums are self-representing).
func Eq(a, b Object) bool {
	if ai, ok := a.(*Integer); ok {
		bi, ok := b.(*Integer)
		return ok && ai.Value == bi.Value
	}
	return a == b
}

// Equal is structural equality over conses, strings, vectors, floats,
// falling back to Eq for everything else.
func Equal(a, b Object) bool {
	switch av := a.(type) {
	case *Cons:
		bv, ok := b.(*Cons)
		return ok && Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *Str:
		bv, ok := b.(*Str)
		return ok && string(av.Bytes) == string(bv.Bytes)
	case *Vector:
		bv, ok := b.(*Vector)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Float:
		bv, ok := b.(*Float)
		return ok && av.Value == bv.Value
	default:
		return Eq(a, b)
	}
}
