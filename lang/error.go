package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/paulchernoch/shy/lang/token"
	"github.com/paulchernoch/shy/lang/value"
)

// Error is a Go error carrying structured logging attributes, used for
// compile-time (lex/parse) failures. Per spec section 7, only compile
// returns a Go error; everything downstream of a successful compile
// reports failure as a Value of Kind Error, never as this type.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error, reusing the existing
// *Error if err already is one.
func WrapError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With adds attributes to the error for structured logging, returning a new
// Error to preserve immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{msg: e.msg, err: e.err, attrs: newAttrs}
}

// LexError wraps a lexer failure with source-snippet context, per spec
// section 4.1.
type LexError struct {
	Pos    token.Position
	Reason string
	Source string
}

func (e *LexError) Error() string {
	return "lex error: " + formatWithContext(e.Source, e.Pos, e.Reason, nil)
}

// ParseError wraps a parser failure with source-snippet context, per spec
// section 4.2.
type ParseError struct {
	Pos      token.Position
	Reason   string
	Source   string
	Expected []string
}

func (e *ParseError) Error() string {
	return "parse error: " + formatWithContext(e.Source, e.Pos, e.Reason, e.Expected)
}

// formatWithContext renders a "line N, column M" header, the offending
// source line prefixed with its line number, and a '^' marker under the
// error column, in the style of the teacher's ParseError.formatWithContext.
func formatWithContext(source string, pos token.Position, reason string, expected []string) string {
	var buf strings.Builder

	buf.WriteString(reason)
	buf.WriteString(" at line ")
	buf.WriteString(strconv.Itoa(pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(pos.Column))
	buf.WriteString(":\n")

	lines := strings.Split(source, "\n")

	if pos.Line > 0 && pos.Line <= len(lines) {
		line := lines[pos.Line-1]
		lineNumStr := strconv.Itoa(pos.Line)

		buf.WriteString("  ")
		buf.WriteString(lineNumStr)
		buf.WriteString(" | ")
		buf.WriteString(line)
		buf.WriteByte('\n')

		padding := strings.Repeat(" ", len(lineNumStr)+5)
		if pos.Column > 0 {
			padding += strings.Repeat(" ", pos.Column-1)
		}

		buf.WriteString(padding)
		buf.WriteString("^\n")
	}

	if len(expected) > 0 {
		quoted := make([]string, len(expected))
		for i, e := range expected {
			quoted[i] = strconv.Quote(e)
		}

		buf.WriteString("expected: ")
		buf.WriteString(strings.Join(quoted, ", "))
	}

	return buf.String()
}

// errorValuef constructs a runtime Value of Kind Error, the only vehicle
// for signaling evaluator failure per spec section 7.
func errorValuef(kind value.ErrorKind, format string, args ...any) value.Value {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	return value.NewError(kind, msg)
}
