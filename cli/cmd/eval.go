package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/paulchernoch/shy/lang"
	"github.com/paulchernoch/shy/lang/value"
)

// Eval compiles a rule read from the CLI's --source file(s)/stdin and
// executes it against an ExecutionContext, printing the result.
type Eval struct {
	Context string `help:"JSON file providing initial variables, or '-' for stdin" short:"c"`
	JSON    bool   `help:"Print the result as JSON instead of native text"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	expr, err := lang.CompileReader(inputReader(ctx))
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "eval"))
	}

	var ectx *lang.ExecutionContext
	if configFrom(ctx).DisableStdlib {
		ectx = lang.NewBareExecutionContext()
	} else {
		ectx = lang.NewExecutionContext()
	}

	if e.Context != "" {
		if err := loadContext(ectx, e.Context); err != nil {
			return lang.WrapError(err).
				With(slog.String("command", "eval"), slog.String("context", e.Context))
		}
	}

	result := expr.Exec(ectx)

	if result.IsError() {
		printSuggestion(ectx, result)
	}

	if e.JSON {
		data, err := lang.MarshalJSON(result)
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		fmt.Println(string(data))

		return nil
	}

	fmt.Println(result.String())

	return nil
}

// loadContext reads a JSON object from path ('-' for stdin) and stores its
// top-level fields into ectx.
func loadContext(ectx *lang.ExecutionContext, path string) error {
	var file *os.File

	if path == "-" {
		file = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		file = f
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	v, err := lang.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	if v.Kind != value.Object {
		return lang.NewError("context file must contain a JSON object")
	}

	for _, key := range v.Object().Keys() {
		val, _ := v.Object().Get(key)
		ectx.Store([]string{key}, val)
	}

	return nil
}

// printSuggestion prints a "did you mean" hint to stderr when result is an
// UnknownVariable/UnknownFunction Error, using fuzzy matching against names
// already known to ectx. The offending name is recovered from the quoted
// identifier inside the Error's message (errorValuef always quotes it with
// %q).
func printSuggestion(ectx *lang.ExecutionContext, result value.Value) {
	name := quotedIdentifier(result.ErrorMessage())
	if name == "" {
		return
	}

	var suggestions []string

	switch result.ErrorKind() {
	case value.UnknownVariable:
		suggestions = ectx.SuggestVariable(name)
	case value.UnknownFunction:
		suggestions = ectx.SuggestFunction(name)
	default:
		return
	}

	if len(suggestions) == 0 {
		return
	}

	fmt.Fprintf(os.Stderr, "did you mean: %v?\n", suggestions)
}

// quotedIdentifier returns the text between the first pair of double quotes
// in msg, or "" if there isn't one.
func quotedIdentifier(msg string) string {
	start := strings.IndexByte(msg, '"')
	if start < 0 {
		return ""
	}

	end := strings.IndexByte(msg[start+1:], '"')
	if end < 0 {
		return ""
	}

	return msg[start+1 : start+1+end]
}
