package report

import (
	"errors"
	"fmt"
)

// TextSpan represents a range or "span" of source text.  Text spans are
// inclusive on both sides.  The line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// ErrorKind classifies a compile error.
type ErrorKind int

// Enumeration of compile error kinds.
const (
	KindInternal          ErrorKind = iota // A broken analyzer invariant.
	KindStructure                          // A node that is illegal where it appears.
	KindUnresolvedType                     // An unknown type name.
	KindUnresolvedName                     // Use of an unbound variable.
	KindDuplicateVariable                  // A variable bound twice.
	KindDuplicateFunction                  // A function declared or defined twice.
	KindSignatureMismatch                  // A declaration that disagrees with its definition.
	KindDereference                        // Dereference of a non-pointer.
	KindCondition                          // A condition that is not a bool.
	KindForLoop                            // A malformed for loop.
	KindUnknownFunction                    // A call to an unknown function.
	KindArgumentCount                      // A call with an unbindable argument list.
	KindUnsupported                        // A recognized but unimplemented operator.
	KindMissingEntrypoint                  // No `main` function.
	KindReturn                             // A return that does not fit its function.

	// KindNarrowing marks warnings about casts that lose width.
	KindNarrowing
)

var kindNames = map[ErrorKind]string{
	KindInternal:          "internal",
	KindStructure:         "structure",
	KindUnresolvedType:    "type",
	KindUnresolvedName:    "name",
	KindDuplicateVariable: "definition",
	KindDuplicateFunction: "definition",
	KindSignatureMismatch: "signature",
	KindDereference:       "type",
	KindCondition:         "type",
	KindForLoop:           "loop",
	KindUnknownFunction:   "name",
	KindArgumentCount:     "argument",
	KindUnsupported:       "operator",
	KindMissingEntrypoint: "entrypoint",
	KindReturn:            "return",
	KindNarrowing:         "cast",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CompileError is an error in the analyzed program.  Fatal errors are returned
// as CompileErrors; warnings are collected as CompileErrors of kind
// KindNarrowing.
type CompileError struct {
	// The classification of the error.
	Kind ErrorKind

	// The error message.
	Message string

	// The span over which the error occurs.  May be nil.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// KindOf returns the kind of a compile error wrapped anywhere in err's chain.
// The boolean is false if err carries no compile error.
func KindOf(err error) (ErrorKind, bool) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind, true
	}

	return KindInternal, false
}
