package lisp

// NewCons allocates one cell.
func NewCons(car, cdr Object) *Cons {
	return &Cons{Car: car, Cdr: cdr}
}

// ListOf folds the values right to left into a chain of cons cells
// terminated by Nil. The first value becomes the car of the outermost
// cell; no values yields Nil itself.
func ListOf(values ...Object) Object {
	list := Object(Nil)
	for i := len(values) - 1; i >= 0; i-- {
		list = NewCons(values[i], list)
	}
	return list
}

// ListLength walks a proper list. The second result is false when the
// chain is dotted or circular (bounded walk).
func ListLength(obj Object) (int, bool) {
	n := 0
	for {
		switch o := obj.(type) {
		case *Symbol:
			if o == Nil {
				return n, true
			}
			return n, false
		case *Cons:
			n++
			if n > maxListLength {
				return n, false
			}
			obj = o.Cdr
		default:
			return n, false
		}
	}
}

const maxListLength = 1 << 24

// ListElems collects the elements of a proper list into a slice.
// Returns false for dotted or circular chains.
func ListElems(obj Object) ([]Object, bool) {
	var elems []Object
	for {
		switch o := obj.(type) {
		case *Symbol:
			if o == Nil {
				return elems, true
			}
			return elems, false
		case *Cons:
			if len(elems) > maxListLength {
				return elems, false
			}
			elems = append(elems, o.Car)
			obj = o.Cdr
		default:
			return elems, false
		}
	}
}

// Nth returns element n of a proper list, Nil when past the end.
func Nth(n int, obj Object) Object {
	for ; n > 0; n-- {
		c, ok := obj.(*Cons)
		if !ok {
			return Nil
		}
		obj = c.Cdr
	}
	if c, ok := obj.(*Cons); ok {
		return c.Car
	}
	return Nil
}
