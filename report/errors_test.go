package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestRaise(t *testing.T) {
	span := &TextSpan{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 9}
	err := Raise(KindUnresolvedType, span, "unable to resolve type: %s", "foo")

	be.Equal(t, err.Error(), "unable to resolve type: foo")
	be.Equal(t, err.Kind, KindUnresolvedType)
	be.Equal(t, err.Span, span)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("analyzing main: %w", Raise(KindCondition, nil, "bad"))

	kind, ok := KindOf(wrapped)
	be.True(t, ok)
	be.Equal(t, kind, KindCondition)

	_, ok = KindOf(errors.New("plain"))
	be.True(t, !ok)
}

func TestNewSpanOver(t *testing.T) {
	a := &TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5}
	b := &TextSpan{StartLine: 3, StartCol: 0, EndLine: 4, EndCol: 7}

	be.Equal(t, *NewSpanOver(a, b), TextSpan{StartLine: 1, StartCol: 2, EndLine: 4, EndCol: 7})
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("warn")
	be.Err(t, err, nil)
	be.Equal(t, level, LogLevelWarn)

	_, err = ParseLogLevel("loud")
	be.True(t, err != nil)
}

func TestErrorKindString(t *testing.T) {
	be.Equal(t, KindNarrowing.String(), "cast")
	be.Equal(t, ErrorKind(99).String(), "ErrorKind(99)")
}
