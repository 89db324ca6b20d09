package eval

import (
	"github.com/rowhit/remacs/internal/lexer"
	"github.com/rowhit/remacs/internal/lisp"
	"github.com/rowhit/remacs/internal/parser"
)

// ReadString reads all forms from src without evaluating them.
func (rt *Runtime) ReadString(src string) ([]lisp.Object, error) {
	p := parser.New(lexer.New(src), rt)
	return p.ReadAll()
}

// EvalString reads and evaluates src, returning the value of the last
// form. Reader failures come back as host errors; evaluation failures
// signal conditions as usual.
func (rt *Runtime) EvalString(src string) (lisp.Object, error) {
	forms, err := rt.ReadString(src)
	if err != nil {
		return nil, err
	}
	result := lisp.Object(lisp.Nil)
	for _, form := range forms {
		result = rt.Eval(form)
	}
	return result, nil
}
