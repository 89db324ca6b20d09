package eval

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rowhit/remacs/internal/bridge"
	"github.com/rowhit/remacs/internal/lisp"
)

func (rt *Runtime) registerBuiltins() {
	for _, b := range coreBuiltins {
		rt.intern(b.Name).Function = b
	}
}

func subr(name string, minArgs, maxArgs int, fn func(rt *Runtime, args []lisp.Object) lisp.Object) *Builtin {
	return &Builtin{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Fn: fn}
}

var coreBuiltins = []*Builtin{
	subr("cons", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.NewCons(args[0], args[1])
	}),
	subr("car", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.carOf(args[0])
	}),
	subr("cdr", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.cdrOf(args[0])
	}),
	subr("setcar", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		cell := rt.checkCons(args[0])
		cell.Car = args[1]
		return args[1]
	}),
	subr("setcdr", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		cell := rt.checkCons(args[0])
		cell.Cdr = args[1]
		return args[1]
	}),
	subr("list", 0, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.ListOf(args...)
	}),
	subr("length", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		switch o := args[0].(type) {
		case *lisp.Str:
			return &lisp.Integer{Value: int64(len(o.Bytes))}
		case *lisp.Vector:
			return &lisp.Integer{Value: int64(len(o.Elems))}
		default:
			n, ok := lisp.ListLength(args[0])
			if !ok {
				bridge.WrongType(rt, QListp, args[0])
			}
			return &lisp.Integer{Value: int64(n)}
		}
	}),
	subr("nth", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		n := rt.checkNatnum(args[0])
		return lisp.Nth(n, args[1])
	}),
	subr("aref", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckArray(rt, args[0])
		idx := rt.checkNatnum(args[1])
		switch o := args[0].(type) {
		case *lisp.Str:
			if idx >= len(o.Bytes) {
				bridge.OutOfRange(rt, args[0], args[1])
			}
			return &lisp.Integer{Value: int64(o.Bytes[idx])}
		case *lisp.Vector:
			if idx >= len(o.Elems) {
				bridge.OutOfRange(rt, args[0], args[1])
			}
			return o.Elems[idx]
		}
		panic("unreachable")
	}),
	subr("elt", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		if lisp.IsArray(args[0]) {
			return bridge.Call(rt, rt.Intern("aref"), args[0], args[1])
		}
		return bridge.Call(rt, rt.Intern("nth"), args[1], args[0])
	}),

	subr("eq", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.Eq(args[0], args[1]))
	}),
	subr("equal", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.Equal(args[0], args[1]))
	}),
	subr("null", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsNil(args[0]))
	}),
	subr("not", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsNil(args[0]))
	}),
	subr("consp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsCons(args[0]))
	}),
	subr("atom", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(!lisp.IsCons(args[0]))
	}),
	subr("listp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsCons(args[0]) || lisp.IsNil(args[0]))
	}),
	subr("stringp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsString(args[0]))
	}),
	subr("symbolp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsSymbol(args[0]))
	}),
	subr("integerp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsInteger(args[0]))
	}),
	subr("characterp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsCharacter(args[0]))
	}),
	subr("arrayp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsArray(args[0]))
	}),
	subr("vectorp", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsVector(args[0]))
	}),
	subr("natnump", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(lisp.IsNatnum(args[0]))
	}),

	subr("intern", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		return rt.Intern(args[0].(*lisp.Str).String())
	}),
	subr("symbol-name", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		return rt.MakeString([]byte(sym.Name))
	}),
	subr("symbol-value", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		if sym.Value == nil {
			rt.Signal(QVoidVariable, lisp.ListOf(sym))
		}
		return sym.Value
	}),
	subr("symbol-function", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		if sym.Function == nil {
			return lisp.Nil
		}
		return sym.Function
	}),
	subr("set", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		sym.Value = args[1]
		return args[1]
	}),
	subr("fset", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		sym.Function = args[1]
		return args[1]
	}),
	subr("put", 3, 3, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		prop := rt.checkSymbol(args[1])
		sym.Put(prop.Name, args[2])
		return args[2]
	}),
	subr("get", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		sym := rt.checkSymbol(args[0])
		prop := rt.checkSymbol(args[1])
		return sym.Get(prop.Name)
	}),

	subr("concat", 0, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		var out []byte
		for _, a := range args {
			bridge.CheckString(rt, a)
			out = append(out, a.(*lisp.Str).Bytes...)
		}
		return rt.MakeString(out)
	}),
	subr("substring", 2, 3, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		b := args[0].(*lisp.Str).Bytes
		from := rt.checkNatnum(args[1])
		to := len(b)
		if len(args) == 3 && !lisp.IsNil(args[2]) {
			to = rt.checkNatnum(args[2])
		}
		if from > to || to > len(b) {
			bridge.OutOfRange(rt, args[0], &lisp.Integer{Value: int64(from)}, &lisp.Integer{Value: int64(to)})
		}
		return rt.MakeString(b[from:to])
	}),
	subr("string-to-char", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		b := args[0].(*lisp.Str).Bytes
		if len(b) == 0 {
			return &lisp.Integer{Value: 0}
		}
		r, _ := utf8.DecodeRune(b)
		return &lisp.Integer{Value: int64(r)}
	}),
	subr("char-to-string", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		n := rt.checkInteger(args[0])
		bridge.CheckChar(rt, n)
		return rt.MakeString([]byte(string(rune(n))))
	}),

	subr("funcall", 1, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return bridge.CallRaw(rt, args)
	}),
	subr("apply", 1, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		last := args[len(args)-1]
		tail, ok := lisp.ListElems(last)
		if !ok {
			bridge.WrongType(rt, QListp, last)
		}
		frame := make([]lisp.Object, 0, len(args)-1+len(tail))
		frame = append(frame, args[:len(args)-1]...)
		frame = append(frame, tail...)
		return bridge.CallRaw(rt, frame)
	}),

	subr("signal", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.Signal(args[0], args[1])
	}),
	subr("error", 1, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		bridge.Error(rt, rt.lispFormat(args[0].(*lisp.Str).String(), args[1:]))
		panic("unreachable")
	}),
	subr("format", 1, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		return rt.MakeString([]byte(rt.lispFormat(args[0].(*lisp.Str).String(), args[1:])))
	}),
	subr("message", 1, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		text := rt.MakeString([]byte(rt.lispFormat(args[0].(*lisp.Str).String(), args[1:])))
		bridge.Message(rt, "%s", text, true)
		return text
	}),
	subr("princ", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.Message(rt, "%s", args[0], false)
		return args[0]
	}),

	subr("+", 0, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.arith(args, 0, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	}),
	subr("-", 0, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		if len(args) == 1 {
			args = []lisp.Object{&lisp.Integer{Value: 0}, args[0]}
		}
		return rt.arith(args, 0, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	}),
	subr("*", 0, -1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.arith(args, 1, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	}),
	subr("<", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(rt.numCompare(args[0], args[1]) < 0)
	}),
	subr(">", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(rt.numCompare(args[0], args[1]) > 0)
	}),
	subr("=", 2, 2, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return lisp.Bool(rt.numCompare(args[0], args[1]) == 0)
	}),

	subr("current-buffer", 0, 0, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.CurrentBuffer()
	}),
	subr("get-buffer-create", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		bridge.CheckString(rt, args[0])
		return rt.GetBufferCreate(args[0].(*lisp.Str).String())
	}),
	subr("set-buffer", 1, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		b, ok := args[0].(*Buffer)
		if !ok {
			bridge.WrongType(rt, rt.Intern("bufferp"), args[0])
		}
		rt.SetCurrentBuffer(b)
		return b
	}),
	subr("buffer-name", 0, 1, func(rt *Runtime, args []lisp.Object) lisp.Object {
		b := rt.CurrentBuffer()
		if len(args) == 1 && !lisp.IsNil(args[0]) {
			var ok bool
			if b, ok = args[0].(*Buffer); !ok {
				bridge.WrongType(rt, rt.Intern("bufferp"), args[0])
			}
		}
		return b.Local(bridge.SlotIndex(rt, "name"))
	}),
	subr("session-id", 0, 0, func(rt *Runtime, args []lisp.Object) lisp.Object {
		return rt.MakeString([]byte(rt.SessionID()))
	}),
}

func (rt *Runtime) carOf(obj lisp.Object) lisp.Object {
	if lisp.IsNil(obj) {
		return lisp.Nil
	}
	return rt.checkCons(obj).Car
}

func (rt *Runtime) cdrOf(obj lisp.Object) lisp.Object {
	if lisp.IsNil(obj) {
		return lisp.Nil
	}
	return rt.checkCons(obj).Cdr
}

func (rt *Runtime) checkCons(obj lisp.Object) *lisp.Cons {
	cell, ok := obj.(*lisp.Cons)
	if !ok {
		bridge.WrongType(rt, QListp, obj)
	}
	return cell
}

func (rt *Runtime) checkSymbol(obj lisp.Object) *lisp.Symbol {
	sym, ok := obj.(*lisp.Symbol)
	if !ok {
		bridge.WrongType(rt, QSymbolp, obj)
	}
	return sym
}

func (rt *Runtime) checkInteger(obj lisp.Object) int64 {
	i, ok := obj.(*lisp.Integer)
	if !ok {
		bridge.WrongType(rt, QIntegerp, obj)
	}
	return i.Value
}

func (rt *Runtime) checkNatnum(obj lisp.Object) int {
	bridge.Verify(rt, lisp.IsNatnum, QNatnump, obj)
	return int(obj.(*lisp.Integer).Value)
}

func (rt *Runtime) arith(args []lisp.Object, unit int64,
	intOp func(a, b int64) int64, floatOp func(a, b float64) float64) lisp.Object {
	acc := unit
	facc := float64(unit)
	isFloat := false
	for i, a := range args {
		switch n := a.(type) {
		case *lisp.Integer:
			if i == 0 {
				acc, facc = n.Value, float64(n.Value)
			} else if isFloat {
				facc = floatOp(facc, float64(n.Value))
			} else {
				acc = intOp(acc, n.Value)
			}
		case *lisp.Float:
			if !isFloat {
				facc = float64(acc)
				isFloat = true
			}
			if i == 0 {
				facc = n.Value
			} else {
				facc = floatOp(facc, n.Value)
			}
		default:
			bridge.WrongType(rt, rt.Intern("numberp"), a)
		}
	}
	if isFloat {
		return &lisp.Float{Value: facc}
	}
	return &lisp.Integer{Value: acc}
}

func (rt *Runtime) numCompare(a, b lisp.Object) int {
	av := rt.numValue(a)
	bv := rt.numValue(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func (rt *Runtime) numValue(obj lisp.Object) float64 {
	switch n := obj.(type) {
	case *lisp.Integer:
		return float64(n.Value)
	case *lisp.Float:
		return n.Value
	default:
		bridge.WrongType(rt, rt.Intern("numberp"), obj)
		panic("unreachable")
	}
}

// lispFormat interpolates Lisp format controls: %s (princ style), %S
// (prin1 style), %d, %c, %x and %%.
func (rt *Runtime) lispFormat(format string, args []lisp.Object) string {
	var out strings.Builder
	argi := 0
	next := func() lisp.Object {
		if argi >= len(args) {
			bridge.Error(rt, "Not enough arguments for format string")
		}
		a := args[argi]
		argi++
		return a
	}
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			out.WriteByte(ch)
			continue
		}
		i++
		if i >= len(format) {
			bridge.Error(rt, "Format string ends in middle of format specifier")
		}
		switch format[i] {
		case '%':
			out.WriteByte('%')
		case 's':
			a := next()
			if s, ok := a.(*lisp.Str); ok {
				out.WriteString(s.String())
			} else {
				out.WriteString(a.Inspect())
			}
		case 'S':
			out.WriteString(next().Inspect())
		case 'd':
			a := next()
			n, ok := a.(*lisp.Integer)
			if !ok {
				bridge.WrongType(rt, QIntegerp, a)
			}
			out.WriteString(n.Inspect())
		case 'c':
			a := next()
			n, ok := a.(*lisp.Integer)
			if !ok {
				bridge.WrongType(rt, QCharacterp, a)
			}
			bridge.CheckChar(rt, n.Value)
			out.WriteRune(rune(n.Value))
		case 'x':
			a := next()
			n, ok := a.(*lisp.Integer)
			if !ok {
				bridge.WrongType(rt, QIntegerp, a)
			}
			out.WriteString(strconv.FormatInt(n.Value, 16))
		default:
			bridge.Errorf(rt, "Invalid format operation %%%c", format[i])
		}
	}
	return out.String()
}
