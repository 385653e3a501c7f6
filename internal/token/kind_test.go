package token

import "testing"

func TestKindString_Covered(t *testing.T) {
	// каждая константа обязана иметь имя в таблице
	for k := EOF; k <= KwWhile; k++ {
		if k.String() == "Unknown" {
			t.Fatalf("kind %d has no name", uint8(k))
		}
	}
	if Kind(200).String() != "Unknown" {
		t.Fatalf("out-of-range kind should stringify as Unknown")
	}
}

func TestTokenClassifiers(t *testing.T) {
	tests := []struct {
		tok       Token
		isLiteral bool
		isKeyword bool
		isPunct   bool
	}{
		{Token{Kind: Ident, Lexeme: "x"}, true, false, false},
		{Token{Kind: StringLit, Lexeme: "hi"}, true, false, false},
		{Token{Kind: NumberLit, Lexeme: "3.14"}, true, false, false},
		{Token{Kind: KwVar, Lexeme: "var"}, false, true, false},
		{Token{Kind: KwAssert, Lexeme: "assert"}, false, true, false},
		{Token{Kind: Percent, Lexeme: "%"}, false, false, true},
		{Token{Kind: BangEq, Lexeme: "!="}, false, false, true},
		{Token{Kind: EOF}, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.tok.IsLiteral(); got != tt.isLiteral {
			t.Errorf("%v.IsLiteral() = %v, want %v", tt.tok, got, tt.isLiteral)
		}
		if got := tt.tok.IsKeyword(); got != tt.isKeyword {
			t.Errorf("%v.IsKeyword() = %v, want %v", tt.tok, got, tt.isKeyword)
		}
		if got := tt.tok.IsPunctOrOp(); got != tt.isPunct {
			t.Errorf("%v.IsPunctOrOp() = %v, want %v", tt.tok, got, tt.isPunct)
		}
	}
}
