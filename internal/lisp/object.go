package lisp

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

type ObjectType string

const (
	SYMBOL_OBJ  = "SYMBOL"
	CONS_OBJ    = "CONS"
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	STRING_OBJ  = "STRING"
	VECTOR_OBJ  = "VECTOR"
	BUILTIN_OBJ = "BUILTIN"
	LAMBDA_OBJ  = "LAMBDA"
	BUFFER_OBJ  = "BUFFER"
)

// Object is the opaque handle to an evaluator-owned dynamic value.
// Everything outside the marshaling boundary operates on Object only.
type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Symbol is an interned name with a value cell, a function cell and a
// property list. Nil and T are distinguished interned symbols.
type Symbol struct {
	Name     string
	Value    Object // nil means void
	Function Object // nil means void
	props    map[string]Object
}

func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return s.Name }
func (s *Symbol) Hash() uint32     { return hashString(s.Name) }

// Get returns the named property, or Nil when absent.
func (s *Symbol) Get(prop string) Object {
	if v, ok := s.props[prop]; ok {
		return v
	}
	return Nil
}

func (s *Symbol) Put(prop string, val Object) {
	if s.props == nil {
		s.props = make(map[string]Object)
	}
	s.props[prop] = val
}

// Nil terminates every proper list and doubles as boolean false.
// T is boolean true. Both are canonical: eq comparison is pointer
// identity, so exactly one of each exists per process.
var (
	Nil = &Symbol{Name: "nil"}
	T   = &Symbol{Name: "t"}
)

func init() {
	Nil.Value = Nil
	T.Value = T
}

// Cons is a mutable two-slot cell. Chains of cells terminated by Nil
// form proper lists.
type Cons struct {
	Car Object
	Cdr Object
}

func (c *Cons) Type() ObjectType { return CONS_OBJ }
func (c *Cons) Inspect() string {
	var out strings.Builder
	out.WriteByte('(')
	out.WriteString(c.Car.Inspect())
	rest := c.Cdr
	for {
		switch r := rest.(type) {
		case *Cons:
			out.WriteByte(' ')
			out.WriteString(r.Car.Inspect())
			rest = r.Cdr
			continue
		case *Symbol:
			if r == Nil {
				out.WriteByte(')')
				return out.String()
			}
		}
		out.WriteString(" . ")
		out.WriteString(rest.Inspect())
		out.WriteByte(')')
		return out.String()
	}
}
func (c *Cons) Hash() uint32 {
	return 31*c.Car.Hash() + c.Cdr.Hash()
}

// Integer also represents characters: a character is an integer in
// [0, config.MaxChar].
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}

type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// Str holds exactly the bytes given at construction, no terminator.
// The byte length is the string's length.
type Str struct {
	Bytes []byte
}

func NewStr(s string) *Str { return &Str{Bytes: []byte(s)} }

func (s *Str) Type() ObjectType { return STRING_OBJ }
func (s *Str) Inspect() string  { return fmt.Sprintf("%q", string(s.Bytes)) }
func (s *Str) Hash() uint32 {
	h := fnv.New32a()
	h.Write(s.Bytes)
	return h.Sum32()
}

func (s *Str) String() string { return string(s.Bytes) }

type Vector struct {
	Elems []Object
}

func (v *Vector) Type() ObjectType { return VECTOR_OBJ }
func (v *Vector) Inspect() string {
	var out strings.Builder
	out.WriteByte('[')
	for i, el := range v.Elems {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(el.Inspect())
	}
	out.WriteByte(']')
	return out.String()
}
func (v *Vector) Hash() uint32 {
	h := uint32(1)
	for _, el := range v.Elems {
		h = 31*h + el.Hash()
	}
	return h
}
