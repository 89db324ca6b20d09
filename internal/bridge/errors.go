package bridge

import (
	"fmt"

	"github.com/rowhit/remacs/internal/config"
)

// Error raises the generic error condition with msg wrapped into an
// evaluator string of exactly len(msg) bytes. Never returns.
func Error(k Kernel, msg string) {
	Raise(k, k.Intern(config.ErrorName), k.MakeString([]byte(msg)))
}

// Errorf interpolates the format host-side first, then raises like
// Error. Never returns.
func Errorf(k Kernel, format string, args ...any) {
	Error(k, fmt.Sprintf(format, args...))
}
