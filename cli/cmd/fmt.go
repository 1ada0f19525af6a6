package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/paulchernoch/shy/lang"
)

// Fmt compiles a rule read from the CLI's --source file(s)/stdin and
// disassembles it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Print the original source text (default)."`
	JSON   JSON   `cmd:""                    help:"Disassemble the compiled instruction stream as JSON."`
	YAML   YAML   `cmd:""                    help:"Disassemble the compiled instruction stream as YAML."`
}

// inputReader returns the CLI's configured source reader, defaulting to
// stdin if none was configured.
func inputReader(ctx context.Context) SourceFiles {
	if src := sourceFilesFrom(ctx); src != nil {
		return src
	}

	return buildSourceFiles([]string{"-"})
}

// Native prints the rule's original source text, verifying it compiles.
type Native struct{}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) error {
	expr, err := lang.CompileReader(inputReader(ctx))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	return expr.FormatNative(ctx, os.Stdout)
}

// JSON disassembles the compiled instruction stream as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	expr, err := lang.CompileReader(inputReader(ctx))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	return expr.FormatJSON(ctx, os.Stdout, j.Indent)
}

// YAML disassembles the compiled instruction stream as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	expr, err := lang.CompileReader(inputReader(ctx))
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	return expr.FormatYAML(ctx, os.Stdout, y.Indent)
}
