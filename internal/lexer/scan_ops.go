package lexer

import (
	"fmt"

	"lox/internal/diag"
	"lox/internal/token"
)

// scanOperatorOrPunct сканирует пунктуацию и операторы. Жадность: для
// '!', '=', '<', '>' сначала пробуем двухсимвольную форму с '='.
// Возвращает ok=false для неизвестного символа (он уже зарепорчен).
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	line := lx.cursor.Line
	emit := func(k token.Kind) (token.Token, bool) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind:   k,
			Lexeme: string(lx.file.Content[sp.Start:sp.End]),
			Line:   line,
		}, true
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '-':
		return emit(token.Minus)
	case '+':
		return emit(token.Plus)
	case ';':
		return emit(token.Semicolon)
	case '*':
		return emit(token.Star)
	case '%':
		return emit(token.Percent)
	case '/':
		// комментарии уже съедены в skipTrivia
		return emit(token.Slash)

	case '!':
		if lx.cursor.Eat('=') {
			return emit(token.BangEq)
		}
		return emit(token.Bang)
	case '=':
		if lx.cursor.Eat('=') {
			return emit(token.EqEq)
		}
		return emit(token.Assign)
	case '<':
		if lx.cursor.Eat('=') {
			return emit(token.LtEq)
		}
		return emit(token.Lt)
	case '>':
		if lx.cursor.Eat('=') {
			return emit(token.GtEq)
		}
		return emit(token.Gt)

	default:
		// неизвестный символ: репорт и skip-and-continue
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedChar, line, sp,
			fmt.Sprintf("unexpected character %q", ch))
		return token.Token{}, false
	}
}
