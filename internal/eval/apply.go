package eval

import (
	"github.com/rowhit/remacs/internal/lisp"
)

// Builtin is a host function callable from Lisp. MaxArgs of -1 means
// any number of arguments.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      func(rt *Runtime, args []lisp.Object) lisp.Object
}

func (b *Builtin) Type() lisp.ObjectType { return lisp.BUILTIN_OBJ }
func (b *Builtin) Inspect() string       { return "#<subr " + b.Name + ">" }
func (b *Builtin) Hash() uint32          { return 0 }

// Lambda is an interpreted closure. Parameters bind dynamically for
// the duration of the body, classic shallow binding.
type Lambda struct {
	Params []*lisp.Symbol
	Body   []lisp.Object
}

func (l *Lambda) Type() lisp.ObjectType { return lisp.LAMBDA_OBJ }
func (l *Lambda) Inspect() string       { return "#<lambda>" }
func (l *Lambda) Hash() uint32          { return 0 }

// Apply invokes frame[0] on frame[1:]. The frame is dead afterward;
// the callee may signal or mutate any evaluator state.
func (rt *Runtime) Apply(frame []lisp.Object) lisp.Object {
	if len(frame) == 0 {
		rt.Signal(QInvalidFunction, lisp.ListOf(lisp.Nil))
	}
	fn := frame[0]
	args := frame[1:]

	// Follow symbol function cells, bounded against cycles.
	for hops := 0; ; hops++ {
		sym, ok := fn.(*lisp.Symbol)
		if !ok {
			break
		}
		if sym.Function == nil || hops > 16 {
			rt.Signal(QVoidFunction, lisp.ListOf(sym))
		}
		fn = sym.Function
	}

	switch f := fn.(type) {
	case *Builtin:
		if len(args) < f.MinArgs || (f.MaxArgs >= 0 && len(args) > f.MaxArgs) {
			rt.Signal(QWrongNumberOfArguments, lisp.ListOf(f, &lisp.Integer{Value: int64(len(args))}))
		}
		return f.Fn(rt, args)
	case *Lambda:
		return rt.applyLambda(f, args)
	case *lisp.Cons:
		if car, ok := f.Car.(*lisp.Symbol); ok && car == QLambda {
			return rt.applyLambda(rt.makeLambda(f.Cdr), args)
		}
	}
	rt.Signal(QInvalidFunction, lisp.ListOf(fn))
	panic("unreachable")
}

func (rt *Runtime) applyLambda(l *Lambda, args []lisp.Object) lisp.Object {
	if len(args) != len(l.Params) {
		rt.Signal(QWrongNumberOfArguments, lisp.ListOf(l, &lisp.Integer{Value: int64(len(args))}))
	}
	for i, p := range l.Params {
		defer rt.specbind(p, args[i])()
	}
	result := lisp.Object(lisp.Nil)
	for _, form := range l.Body {
		result = rt.Eval(form)
	}
	return result
}

// specbind installs a dynamic binding and returns the matching unbind.
// The unbind must run on every exit path, including signal unwinds, so
// callers defer it immediately.
func (rt *Runtime) specbind(sym *lisp.Symbol, val lisp.Object) func() {
	old := sym.Value
	sym.Value = val
	return func() { sym.Value = old }
}

// makeLambda parses ((params...) body...) into a Lambda.
func (rt *Runtime) makeLambda(rest lisp.Object) *Lambda {
	cell, ok := rest.(*lisp.Cons)
	if !ok {
		rt.Signal(QInvalidFunction, lisp.ListOf(rest))
	}
	paramObjs, ok := lisp.ListElems(cell.Car)
	if !ok {
		rt.Signal(QInvalidFunction, lisp.ListOf(cell.Car))
	}
	params := make([]*lisp.Symbol, len(paramObjs))
	for i, p := range paramObjs {
		sym, ok := p.(*lisp.Symbol)
		if !ok {
			rt.Signal(QInvalidFunction, lisp.ListOf(p))
		}
		params[i] = sym
	}
	body, _ := lisp.ListElems(cell.Cdr)
	return &Lambda{Params: params, Body: body}
}

// Eval evaluates one form.
func (rt *Runtime) Eval(form lisp.Object) lisp.Object {
	switch f := form.(type) {
	case *lisp.Symbol:
		if f.Value == nil {
			rt.Signal(QVoidVariable, lisp.ListOf(f))
		}
		return f.Value
	case *lisp.Cons:
		return rt.evalCall(f)
	default:
		// Integers, floats, strings and vectors self-evaluate.
		return form
	}
}

func (rt *Runtime) evalCall(form *lisp.Cons) lisp.Object {
	if head, ok := form.Car.(*lisp.Symbol); ok {
		switch head.Name {
		case "quote":
			return lisp.Nth(0, form.Cdr)
		case "lambda":
			return rt.makeLambda(form.Cdr)
		case "if":
			return rt.evalIf(form.Cdr)
		case "progn":
			return rt.evalProgn(form.Cdr)
		case "while":
			return rt.evalWhile(form.Cdr)
		case "setq":
			return rt.evalSetq(form.Cdr)
		case "let":
			return rt.evalLet(form.Cdr)
		case "defun":
			return rt.evalDefun(form.Cdr)
		case "and":
			return rt.evalAnd(form.Cdr)
		case "or":
			return rt.evalOr(form.Cdr)
		case "condition-case":
			return rt.evalConditionCase(form.Cdr)
		}
	}

	// Ordinary call: evaluate arguments left to right and build the
	// frame [callee, args...].
	elems, proper := lisp.ListElems(form)
	if !proper {
		rt.Signal(QInvalidFunction, lisp.ListOf(form))
	}
	frame := make([]lisp.Object, len(elems))
	frame[0] = elems[0]
	for i := 1; i < len(elems); i++ {
		frame[i] = rt.Eval(elems[i])
	}
	return rt.Apply(frame)
}

func (rt *Runtime) evalIf(rest lisp.Object) lisp.Object {
	cond := rt.Eval(lisp.Nth(0, rest))
	if lisp.Truthy(cond) {
		return rt.Eval(lisp.Nth(1, rest))
	}
	elems, _ := lisp.ListElems(rest)
	result := lisp.Object(lisp.Nil)
	for _, form := range elems[min(2, len(elems)):] {
		result = rt.Eval(form)
	}
	return result
}

func (rt *Runtime) evalProgn(rest lisp.Object) lisp.Object {
	elems, _ := lisp.ListElems(rest)
	result := lisp.Object(lisp.Nil)
	for _, form := range elems {
		result = rt.Eval(form)
	}
	return result
}

func (rt *Runtime) evalWhile(rest lisp.Object) lisp.Object {
	elems, _ := lisp.ListElems(rest)
	if len(elems) == 0 {
		return lisp.Nil
	}
	for lisp.Truthy(rt.Eval(elems[0])) {
		for _, form := range elems[1:] {
			rt.Eval(form)
		}
	}
	return lisp.Nil
}

func (rt *Runtime) evalSetq(rest lisp.Object) lisp.Object {
	elems, _ := lisp.ListElems(rest)
	result := lisp.Object(lisp.Nil)
	for i := 0; i+1 < len(elems); i += 2 {
		sym, ok := elems[i].(*lisp.Symbol)
		if !ok {
			rt.Signal(QWrongTypeArgument, lisp.ListOf(QSymbolp, elems[i]))
		}
		result = rt.Eval(elems[i+1])
		sym.Value = result
	}
	return result
}

func (rt *Runtime) evalLet(rest lisp.Object) lisp.Object {
	cell, ok := rest.(*lisp.Cons)
	if !ok {
		return lisp.Nil
	}
	specs, _ := lisp.ListElems(cell.Car)

	// Evaluate all init forms before binding any variable.
	syms := make([]*lisp.Symbol, len(specs))
	vals := make([]lisp.Object, len(specs))
	for i, spec := range specs {
		switch s := spec.(type) {
		case *lisp.Symbol:
			syms[i], vals[i] = s, lisp.Nil
		case *lisp.Cons:
			sym, ok := s.Car.(*lisp.Symbol)
			if !ok {
				rt.Signal(QWrongTypeArgument, lisp.ListOf(QSymbolp, s.Car))
			}
			syms[i] = sym
			vals[i] = rt.Eval(lisp.Nth(0, s.Cdr))
		default:
			rt.Signal(QWrongTypeArgument, lisp.ListOf(QListp, spec))
		}
	}
	for i := range syms {
		defer rt.specbind(syms[i], vals[i])()
	}
	return rt.evalProgn(cell.Cdr)
}

func (rt *Runtime) evalDefun(rest lisp.Object) lisp.Object {
	cell, ok := rest.(*lisp.Cons)
	if !ok {
		rt.Signal(QInvalidFunction, lisp.ListOf(rest))
	}
	sym, ok := cell.Car.(*lisp.Symbol)
	if !ok {
		rt.Signal(QWrongTypeArgument, lisp.ListOf(QSymbolp, cell.Car))
	}
	sym.Function = rt.makeLambda(cell.Cdr)
	return sym
}

func (rt *Runtime) evalAnd(rest lisp.Object) lisp.Object {
	elems, _ := lisp.ListElems(rest)
	result := lisp.Object(lisp.T)
	for _, form := range elems {
		result = rt.Eval(form)
		if !lisp.Truthy(result) {
			return result
		}
	}
	return result
}

func (rt *Runtime) evalOr(rest lisp.Object) lisp.Object {
	elems, _ := lisp.ListElems(rest)
	for _, form := range elems {
		if result := rt.Eval(form); lisp.Truthy(result) {
			return result
		}
	}
	return lisp.Nil
}

// evalConditionCase implements
// (condition-case var bodyform (conditions handler...)...).
func (rt *Runtime) evalConditionCase(rest lisp.Object) (result lisp.Object) {
	elems, _ := lisp.ListElems(rest)
	if len(elems) < 2 {
		return lisp.Nil
	}
	varSym, _ := elems[0].(*lisp.Symbol)
	clauses := elems[2:]

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cond, ok := r.(*Condition)
		if !ok {
			panic(r)
		}
		for _, clause := range clauses {
			cell, ok := clause.(*lisp.Cons)
			if !ok || !rt.clauseMatches(cell.Car, cond.Sym) {
				continue
			}
			if varSym != nil && varSym != lisp.Nil {
				defer rt.specbind(varSym, lisp.NewCons(cond.Sym, cond.Data))()
			}
			result = rt.evalProgn(cell.Cdr)
			return
		}
		panic(r)
	}()

	return rt.Eval(elems[1])
}

// clauseMatches handles a single condition symbol or a list of them.
func (rt *Runtime) clauseMatches(spec, sig lisp.Object) bool {
	if sym, ok := spec.(*lisp.Symbol); ok {
		return conditionMatches(sym, sig)
	}
	elems, _ := lisp.ListElems(spec)
	for _, el := range elems {
		if sym, ok := el.(*lisp.Symbol); ok && conditionMatches(sym, sig) {
			return true
		}
	}
	return false
}
