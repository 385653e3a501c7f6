package lexer

import (
	"lox/internal/token"
)

// scanIdentOrKeyword сканирует максимальную последовательность
// [a-zA-Z0-9_] и проверяет её через token.LookupKeyword. Совпадение
// только целиком: "forest" — это Ident, а не KwFor + "est".
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	line := lx.cursor.Line

	lx.cursor.Bump() // первый байт уже классифицирован как alpha
	for isAlphaNumeric(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	raw := lx.file.Content[sp.Start:sp.End]

	var text string
	if lx.opts.Interner != nil {
		text = lx.opts.Interner.InternBytes(raw)
	} else {
		text = string(raw)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Lexeme: text, Line: line}
	}
	return token.Token{Kind: token.Ident, Lexeme: text, Line: line}
}
