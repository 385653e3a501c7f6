package lexer

import (
	"lox/internal/token"
)

// scanNumber сканирует максимальную последовательность десятичных цифр,
// затем опционально '.' и ещё одну последовательность цифр — но только
// если за точкой стоит цифра. Хвостовая точка в число не входит: "3."
// даёт Number("3") и отдельный Dot на следующем шаге. Лексема — сырой
// текст; численное преобразование выполняет следующая стадия.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	line := lx.cursor.Line

	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' потребляется только вместе с цифрой за ней
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDigit(b1) {
		lx.cursor.Bump() // '.'
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:   token.NumberLit,
		Lexeme: string(lx.file.Content[sp.Start:sp.End]),
		Line:   line,
	}
}
