package token

import "testing"

func TestPosition_String(t *testing.T) {
	p := Position{Offset: 10, Line: 2, Column: 5}
	if got, want := p.String(), "2:5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestToken_Is(t *testing.T) {
	tok := Token{Type: Operator, Literal: "+"}

	if !tok.Is(Operator, "+") {
		t.Error("expected Is(Operator, \"+\") to be true")
	}

	if tok.Is(Operator, "-") {
		t.Error("expected Is(Operator, \"-\") to be false")
	}

	if tok.Is(Number, "+") {
		t.Error("expected Is(Number, \"+\") to be false")
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Type: Number, Literal: "42", Pos: Position{Line: 1, Column: 3}}

	got := tok.String()
	want := `number("42")@1:3`

	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Invalid, "invalid"},
		{Number, "number"},
		{String, "string"},
		{Regex, "regex"},
		{Identifier, "identifier"},
		{FunctionName, "function-name"},
		{Operator, "operator"},
		{Punctuation, "punctuation"},
		{EOF, "eof"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
