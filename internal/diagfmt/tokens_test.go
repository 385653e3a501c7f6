package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lox/internal/token"
)

func sampleTokens() []token.Token {
	return []token.Token{
		{Kind: token.KwVar, Lexeme: "var", Line: 1},
		{Kind: token.Ident, Lexeme: "a", Line: 1},
		{Kind: token.Assign, Lexeme: "=", Line: 1},
		{Kind: token.NumberLit, Lexeme: "1", Line: 1},
		{Kind: token.Semicolon, Lexeme: ";", Line: 1},
		{Kind: token.EOF, Lexeme: "", Line: 1},
	}
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, sampleTokens()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "KwVar") || !strings.Contains(lines[0], `"var"`) {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[5], "EOF") {
		t.Errorf("last line = %q, want EOF", lines[5])
	}
}

func TestFormatTokensJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, sampleTokens()); err != nil {
		t.Fatal(err)
	}

	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out) != 6 {
		t.Fatalf("got %d entries, want 6", len(out))
	}
	if out[0].Kind != "KwVar" || out[0].Lexeme != "var" || out[0].Line != 1 {
		t.Errorf("first entry = %+v", out[0])
	}
	if out[5].Kind != "EOF" || out[5].Lexeme != "" {
		t.Errorf("last entry = %+v", out[5])
	}
}
