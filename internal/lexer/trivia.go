package lexer

import (
	"lox/internal/diag"
)

// skipTrivia съедает подряд идущие незначимые байты перед токеном:
//   - ' ', '\t', '\r' — пропускаются, строка не меняется
//   - '\n' — Bump сам увеличивает Line
//   - //... до \n (сам \n не потребляется здесь)
//   - /* ... */ с поддержкой вложенности; если не закрыт — репорт и
//     остаток входа считается потреблённым
//
// Токены для trivia не создаются.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			if lx.skipComment() {
				continue
			}
		}

		// значимый байт
		break
	}
}

// skipComment обрабатывает "//" и "/*". Возвращает false, если это
// одиночный '/', и оставляет курсор на нём.
func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/': // строчный комментарий до конца строки
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*': // блочный комментарий, с вложенностью
		lx.cursor.Bump()
		openSpan := lx.cursor.SpanFrom(start)
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			// дошли до EOF с открытым комментарием
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.Line,
				lx.cursor.SpanFrom(start), "unterminated block comment",
				diag.Note{Span: openSpan, Msg: "block comment opened here"})
		}
		return true

	default:
		// это не комментарий — вернёмся, пусть сканируется как оператор '/'
		lx.cursor.Reset(start)
		return false
	}
}
