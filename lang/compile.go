package lang

import (
	"errors"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/paulchernoch/shy/lang/lexer"
	"github.com/paulchernoch/shy/lang/parser"
)

// Compile lexes and parses source into an immutable Expression, per spec
// section 6's core API (`compile(source) -> Expression | ParseError |
// LexError`). The returned error is always a *LexError or *ParseError,
// never a bare Go error, so callers can switch on concrete type.
func Compile(source string) (*Expression, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &LexError{Pos: lexErr.Pos, Reason: lexErr.Reason, Source: source}
		}

		return nil, WrapError(err)
	}

	instrs, err := parser.Parse(toks)
	if err != nil {
		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			return nil, &ParseError{Pos: parseErr.Pos, Reason: parseErr.Reason, Source: source}
		}

		return nil, WrapError(err)
	}

	return &Expression{Source: source, Instructions: instrs}, nil
}

// CompileReader reads r to completion via an async read-ahead wrapper
// (amortizing I/O latency behind parsing, in the same spirit as the
// teacher's ParseReader) and compiles the result.
func CompileReader(r io.Reader) (*Expression, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, NewError("read input").Wrap(err).With(slog.Int("bytes_read", len(data)))
	}

	return Compile(string(data))
}
