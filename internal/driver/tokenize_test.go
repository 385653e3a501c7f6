package driver

import (
	"os"
	"path/filepath"
	"testing"

	"lox/internal/token"
)

func TestTokenizeSource_Simple(t *testing.T) {
	res := TokenizeSource("test.lox", []byte("var answer = 42;"), 10)

	wantKinds := []token.Kind{
		token.KwVar, token.Ident, token.Assign, token.NumberLit, token.Semicolon, token.EOF,
	}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d", len(res.Tokens), len(wantKinds))
	}
	for i, k := range wantKinds {
		if res.Tokens[i].Kind != k {
			t.Errorf("token[%d].Kind = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeSource_Errors(t *testing.T) {
	res := TokenizeSource("bad.lox", []byte("@ var #"), 10)

	// ошибочные символы не производят токенов
	wantKinds := []token.Kind{token.KwVar, token.EOF}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d", len(res.Tokens), len(wantKinds))
	}
	if res.Bag.Len() != 2 {
		t.Errorf("diagnostics = %d, want 2", res.Bag.Len())
	}
}

func TestTokenizeSource_EndsWithEOF(t *testing.T) {
	res := TokenizeSource("empty.lox", nil, 10)
	if len(res.Tokens) != 1 || res.Tokens[0].Kind != token.EOF {
		t.Fatalf("empty source: tokens = %v", res.Tokens)
	}
	if res.Tokens[0].Lexeme != "" {
		t.Errorf("EOF lexeme = %q, want empty", res.Tokens[0].Lexeme)
	}
}

func TestTokenize_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lox")
	if err := os.WriteFile(path, []byte("print \"hello\";\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []token.Kind{token.KwPrint, token.StringLit, token.Semicolon, token.EOF}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d", len(res.Tokens), len(wantKinds))
	}
	if res.Tokens[1].Lexeme != "hello" {
		t.Errorf("string lexeme = %q, want %q", res.Tokens[1].Lexeme, "hello")
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "missing.lox"), 10); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestTokenize_MaxDiagnostics(t *testing.T) {
	res := TokenizeSource("noisy.lox", []byte("@ # $ @ #"), 2)
	if res.Bag.Len() != 2 {
		t.Errorf("bag should be capped at 2, got %d", res.Bag.Len())
	}
}
