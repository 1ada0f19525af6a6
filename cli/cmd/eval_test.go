package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func runEvalOnSource(t *testing.T, e *Eval, source string) (string, error) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "shy-eval-*.shy")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString(source); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	ctx := WithSourceFiles(context.Background(), []string{tmpfile.Name()})

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	os.Stdout = w

	runErr := e.Run(ctx)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)

	return buf.String(), runErr
}

func TestEvalRunArithmetic(t *testing.T) {
	out, err := runEvalOnSource(t, &Eval{}, "2 + 3 * 4")
	if err != nil {
		t.Fatalf("Eval.Run() unexpected error = %v", err)
	}

	if strings.TrimSpace(out) != "14" {
		t.Errorf("Eval.Run() output = %q, want %q", out, "14")
	}
}

func TestEvalRunJSON(t *testing.T) {
	out, err := runEvalOnSource(t, &Eval{JSON: true}, "1 + 1")
	if err != nil {
		t.Fatalf("Eval.Run() unexpected error = %v", err)
	}

	if !strings.Contains(out, "2") {
		t.Errorf("Eval.Run() JSON output = %q, want to contain %q", out, "2")
	}
}

func TestEvalRunCompileError(t *testing.T) {
	_, err := runEvalOnSource(t, &Eval{}, "1 +")
	if err == nil {
		t.Error("Eval.Run() expected compile error for incomplete expression, got nil")
	}
}

func TestQuotedIdentifier(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "quoted name", msg: `unknown variable "foo"`, want: "foo"},
		{name: "no quotes", msg: "something went wrong", want: ""},
		{name: "single quote", msg: `unterminated "foo`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quotedIdentifier(tt.msg); got != tt.want {
				t.Errorf("quotedIdentifier(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}
