package config

const SourceFileExt = ".el"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".el", ".rel"}

// MaxChar is the largest valid character code. Codepoints above the
// Unicode range are raw-byte and private-use codes, matching the
// evaluator's multibyte representation.
const MaxChar = 0x3FFFFF

// IsBatchMode indicates if the interpreter is running non-interactively.
// This is set once at startup in main.go.
var IsBatchMode = false

// Distinguished symbol names
const (
	NilName = "nil"
	TName   = "t"
)

// Built-in error symbol names
const (
	ErrorName          = "error"
	QuitName           = "quit"
	WrongTypeArgName   = "wrong-type-argument"
	ArgsOutOfRangeName = "args-out-of-range"
	VoidVariableName   = "void-variable"
	VoidFunctionName   = "void-function"
)

// Property names used by the condition system
const (
	ErrorConditionsProp = "error-conditions"
	ErrorMessageProp    = "error-message"
)

// DefaultMessageLogSize bounds the in-memory message log.
const DefaultMessageLogSize = 1000
