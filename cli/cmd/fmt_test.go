package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func runFmtOnSource(t *testing.T, run func(context.Context) error, source string) (string, error) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "shy-fmt-*.shy")
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

	runErr := run(ctx)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)

	return buf.String(), runErr
}

func TestNativeFmtValidSyntax(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "arithmetic", input: "1 + 2 * 3", contains: "+"},
		{name: "comparison", input: "x > 5 && y < 10", contains: "&&"},
		{name: "function call", input: "abs(-3.5)", contains: "abs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native := &Native{}

			out, err := runFmtOnSource(t, native.Run, tt.input)
			if err != nil {
				t.Fatalf("Native.Run() unexpected error = %v", err)
			}

			if !strings.Contains(out, tt.contains) {
				t.Errorf("Native.Run() output = %q, want to contain %q", out, tt.contains)
			}
		})
	}
}

func TestNativeFmtInvalidSyntax(t *testing.T) {
	native := &Native{}

	_, err := runFmtOnSource(t, native.Run, "1 +")
	if err == nil {
		t.Error("Native.Run() expected error for incomplete expression, got nil")
	}
}

func TestJSONFmtValidSyntax(t *testing.T) {
	j := &JSON{Indent: 2}

	out, err := runFmtOnSource(t, j.Run, "1 + 2")
	if err != nil {
		t.Fatalf("JSON.Run() unexpected error = %v", err)
	}

	if !strings.Contains(out, "{") {
		t.Errorf("JSON.Run() output = %q, want JSON object", out)
	}
}

func TestJSONFmtInvalidSyntax(t *testing.T) {
	j := &JSON{Indent: 2}

	_, err := runFmtOnSource(t, j.Run, "1 +")
	if err == nil {
		t.Error("JSON.Run() expected error for incomplete expression, got nil")
	}
}

func TestYAMLFmtValidSyntax(t *testing.T) {
	y := &YAML{Indent: 2}

	out, err := runFmtOnSource(t, y.Run, "1 + 2")
	if err != nil {
		t.Fatalf("YAML.Run() unexpected error = %v", err)
	}

	if out == "" {
		t.Error("YAML.Run() produced no output")
	}
}

func TestYAMLFmtInvalidSyntax(t *testing.T) {
	y := &YAML{Indent: 2}

	_, err := runFmtOnSource(t, y.Run, "1 +")
	if err == nil {
		t.Error("YAML.Run() expected error for incomplete expression, got nil")
	}
}
