package lexer

import (
	"fmt"

	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// scanString сканирует "..." без интерпретации escape-последовательностей:
// все байты берутся буквально, многострочные литералы разрешены. Лексема —
// ровно текст между кавычками, сами кавычки не входят.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	line := lx.cursor.Line
	lx.cursor.Bump() // opening '"'
	contentStart := lx.cursor.Off

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '"' {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump() // closing '"'
			return token.Token{
				Kind:   token.StringLit,
				Lexeme: string(lx.file.Content[contentStart:contentEnd]),
				Line:   line,
			}, true
		}
		lx.cursor.Bump() // '\n' внутри литерала учитывается курсором
	}

	// EOF без закрывающей кавычки: токен не создаётся, проход продолжается
	partial := string(lx.file.Content[contentStart:lx.cursor.Off])
	lx.errLex(diag.LexUnterminatedString, lx.cursor.Line,
		lx.cursor.SpanFrom(start),
		fmt.Sprintf("unterminated string: %s", partial),
		diag.Note{
			Span: source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(start) + 1},
			Msg:  "string starts here",
		})
	return token.Token{}, false
}
