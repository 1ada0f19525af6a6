package lexer

import (
	"testing"

	"github.com/paulchernoch/shy/lang/token"
)

func tokenTypes(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}

	return out
}

func TestTokenize_Arithmetic(t *testing.T) {
	toks, err := Tokenize("2 + 3 * 4")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.Number, "2"},
		{token.Operator, "+"},
		{token.Number, "3"},
		{token.Operator, "*"},
		{token.Number, "4"},
		{token.EOF, ""},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}

	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Errorf("token[%d] = %s(%q), want %s(%q)", i, toks[i].Type, toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestTokenize_String(t *testing.T) {
	toks, err := Tokenize(`"hello\nworld"`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[0].Type != token.String || toks[0].Literal != "hello\nworld" {
		t.Errorf("got %s(%q), want string(%q)", toks[0].Type, toks[0].Literal, "hello\nworld")
	}
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected error for unterminated string literal")
	}
}

func TestTokenize_InvalidEscape(t *testing.T) {
	_, err := Tokenize(`"bad\qescape"`)
	if err == nil {
		t.Fatal("expected error for invalid escape sequence")
	}
}

func TestTokenize_RegexAfterOperator(t *testing.T) {
	toks, err := Tokenize(`x ~ /foo.*/`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[2].Type != token.Regex || toks[2].Literal != "foo.*" {
		t.Errorf("got %s(%q), want regex(%q)", toks[2].Type, toks[2].Literal, "foo.*")
	}
}

func TestTokenize_DivisionNotRegex(t *testing.T) {
	toks, err := Tokenize("a / b")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[1].Type != token.Operator || toks[1].Literal != "/" {
		t.Errorf("got %s(%q), want operator(\"/\")", toks[1].Type, toks[1].Literal)
	}
}

func TestTokenize_FunctionNameVsIdentifier(t *testing.T) {
	toks, err := Tokenize("sin(x) + y")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[0].Type != token.FunctionName {
		t.Errorf("sin: got %s, want function-name", toks[0].Type)
	}

	var yTok token.Token
	for _, tk := range toks {
		if tk.Literal == "y" {
			yTok = tk
		}
	}

	if yTok.Type != token.Identifier {
		t.Errorf("y: got %s, want identifier", yTok.Type)
	}
}

func TestTokenize_PropertyPath(t *testing.T) {
	toks, err := Tokenize("a.b.c")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	want := []string{"a", ".", "b", ".", "c"}
	if len(toks)-1 != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks)-1, len(want))
	}

	for i, lit := range want {
		if toks[i].Literal != lit {
			t.Errorf("token[%d] = %q, want %q", i, toks[i].Literal, lit)
		}
	}
}

func TestTokenize_MultiCharOperators(t *testing.T) {
	toks, err := Tokenize("a && b || c == d != e <= f >= g")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var ops []string
	for _, tk := range toks {
		if tk.Type == token.Operator {
			ops = append(ops, tk.Literal)
		}
	}

	want := []string{"&&", "||", "==", "!=", "<=", ">="}
	if len(ops) != len(want) {
		t.Fatalf("got operators %v, want %v", ops, want)
	}

	for i, w := range want {
		if ops[i] != w {
			t.Errorf("operator[%d] = %q, want %q", i, ops[i], w)
		}
	}
}

func TestTokenize_SuperscriptPower(t *testing.T) {
	toks, err := Tokenize("x²")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[1].Type != token.Operator || toks[1].Exponent != "2" {
		t.Errorf("got %s exponent=%q, want operator exponent=\"2\"", toks[1].Type, toks[1].Exponent)
	}
}

func TestTokenize_Factorial(t *testing.T) {
	toks, err := Tokenize("5!")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[1].Type != token.Operator || toks[1].Literal != "!" {
		t.Errorf("got %s(%q), want operator(\"!\")", toks[1].Type, toks[1].Literal)
	}
}

func TestTokenize_MalformedExponent(t *testing.T) {
	_, err := Tokenize("1e")
	if err == nil {
		t.Fatal("expected error for malformed exponent")
	}
}

func TestTokenize_StrayCharacter(t *testing.T) {
	_, err := Tokenize("a @ b")
	if err == nil {
		t.Fatal("expected error for stray character")
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Errorf("got %v, want single EOF token", tokenTypes(toks))
	}
}

func TestTokenize_WhitespaceSkipped(t *testing.T) {
	toks, err := Tokenize("  \t 1  \t  + \t  2 \t ")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	types := tokenTypes(toks)
	want := []token.Type{token.Number, token.Operator, token.Number, token.EOF}

	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}

func TestTokenize_PunctuationAndSemicolon(t *testing.T) {
	toks, err := Tokenize("f(1, 2); g()")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var semi bool
	for _, tk := range toks {
		if tk.Is(token.Punctuation, ";") {
			semi = true
		}
	}

	if !semi {
		t.Error("expected a ';' punctuation token")
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks, err := Tokenize("a\nb")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("a: pos = %v, want line 1 column 1", toks[0].Pos)
	}

	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Errorf("b: pos = %v, want line 2 column 1", toks[1].Pos)
	}
}
