package eval

import (
	"strings"

	"github.com/rowhit/remacs/internal/bridge"
	"github.com/rowhit/remacs/internal/config"
	"github.com/rowhit/remacs/internal/lisp"
)

// Condition is a signaled error: a condition symbol plus a data list.
// It travels as a panic value until a condition-case handler or the
// top level catches it.
type Condition struct {
	Sym  lisp.Object
	Data lisp.Object
}

// Error renders the condition for the top-level reporter, using the
// symbol's error-message property when it has one.
func (c *Condition) Error() string {
	var out strings.Builder
	msg := ""
	if sym, ok := c.Sym.(*lisp.Symbol); ok {
		if m, ok := sym.Get(config.ErrorMessageProp).(*lisp.Str); ok {
			msg = m.String()
		}
	}
	if msg == "" {
		msg = c.Sym.Inspect()
	}
	out.WriteString(msg)
	elems, _ := lisp.ListElems(c.Data)
	for i, el := range elems {
		if i == 0 {
			out.WriteString(": ")
		} else {
			out.WriteString(", ")
		}
		if s, ok := el.(*lisp.Str); ok {
			out.WriteString(s.String())
		} else {
			out.WriteString(el.Inspect())
		}
	}
	return out.String()
}

// Signal transfers control to the innermost matching condition-case
// handler by panicking with a *Condition. It returns normally only
// for the quit condition while quits are inhibited; every other
// signal never returns.
func (rt *Runtime) Signal(sym, data lisp.Object) lisp.Object {
	if s, ok := sym.(*lisp.Symbol); ok && s == QQuit && rt.inhibitQuit {
		return lisp.Nil
	}
	panic(&Condition{Sym: sym, Data: data})
}

// conditionMatches reports whether a signaled symbol is covered by a
// handler clause symbol: the clause matches when it appears in the
// signaled symbol's error-conditions property, or is t.
func conditionMatches(clause *lisp.Symbol, sig lisp.Object) bool {
	if clause == lisp.T {
		return true
	}
	sym, ok := sig.(*lisp.Symbol)
	if !ok {
		return false
	}
	conds, _ := lisp.ListElems(sym.Get(config.ErrorConditionsProp))
	for _, c := range conds {
		if c == lisp.Object(clause) {
			return true
		}
	}
	return false
}

// defineError gives an error symbol its error-conditions chain and
// human-readable message. parents list the more general conditions,
// ending in the generic error.
func (rt *Runtime) defineError(sym *lisp.Symbol, message string, parents ...*lisp.Symbol) {
	conds := make([]lisp.Object, 0, 1+len(parents))
	conds = append(conds, sym)
	for _, p := range parents {
		conds = append(conds, p)
	}
	sym.Put(config.ErrorConditionsProp, lisp.ListOf(conds...))
	sym.Put(config.ErrorMessageProp, lisp.NewStr(message))
}

func (rt *Runtime) defineErrorSymbols() {
	rt.defineError(QError, "error")
	rt.defineError(QQuit, "Quit")
	rt.defineError(QWrongTypeArgument, "Wrong type argument", QError)
	rt.defineError(QArgsOutOfRange, "Args out of range", QError)
	rt.defineError(QVoidVariable, "Symbol's value as variable is void", QError)
	rt.defineError(QVoidFunction, "Symbol's function definition is void", QError)
	rt.defineError(QInvalidFunction, "Invalid function", QError)
	rt.defineError(QWrongNumberOfArguments, "Wrong number of arguments", QError)
	rt.defineError(QEndOfFile, "End of file during parsing", QError)
}

// registerSymbols declares the starting symbol table for symgen. It
// performs no runtime action.
func registerSymbols() {
	bridge.DefineSymbol("error", QError)
	bridge.DefineSymbol("quit", QQuit)
	bridge.DefineSymbol("wrong-type-argument", QWrongTypeArgument)
	bridge.DefineSymbol("args-out-of-range", QArgsOutOfRange)
	bridge.DefineSymbol("void-variable", QVoidVariable)
	bridge.DefineSymbol("void-function", QVoidFunction)
	bridge.DefineSymbol("invalid-function", QInvalidFunction)
	bridge.DefineSymbol("wrong-number-of-arguments", QWrongNumberOfArguments)
	bridge.DefineSymbol("end-of-file", QEndOfFile)
	bridge.DefineSymbol("arrayp", QArrayp)
	bridge.DefineSymbol("stringp", QStringp)
	bridge.DefineSymbol("characterp", QCharacterp)
	bridge.DefineSymbol("natnump", QNatnump)
	bridge.DefineSymbol("listp", QListp)
	bridge.DefineSymbol("symbolp", QSymbolp)
	bridge.DefineSymbol("integerp", QIntegerp)
	bridge.DefineSymbol("quote", QQuote)
	bridge.DefineSymbol("lambda", QLambda)
}
