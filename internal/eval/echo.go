package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rowhit/remacs/internal/lisp"
)

// Echo is the echo area plus the bounded in-memory message log.
type Echo struct {
	w   io.Writer
	tty bool
	log []string
	cap int
}

func newEcho(w io.Writer, logCap int) *Echo {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Echo{w: w, tty: tty, cap: logCap}
}

// EmitMessage interpolates obj into format (one %s verb) and writes
// the result to the echo area; when shouldLog is set the text is also
// appended to the message log. Never signals.
func (rt *Runtime) EmitMessage(format string, obj lisp.Object, shouldLog bool) {
	text := format
	if obj != nil {
		arg := obj.Inspect()
		if s, ok := obj.(*lisp.Str); ok {
			arg = s.String()
		}
		text = fmt.Sprintf(format, arg)
	}
	if shouldLog {
		rt.echo.append(text)
	}
	fmt.Fprintln(rt.echo.w, text)
}

func (e *Echo) append(text string) {
	e.log = append(e.log, text)
	if e.cap > 0 && len(e.log) > e.cap {
		e.log = e.log[len(e.log)-e.cap:]
	}
}

// Messages returns a copy of the message log, oldest first.
func (rt *Runtime) Messages() []string {
	out := make([]string, len(rt.echo.log))
	copy(out, rt.echo.log)
	return out
}

// Interactive reports whether the echo area writes to a terminal.
func (rt *Runtime) Interactive() bool { return rt.echo.tty }
