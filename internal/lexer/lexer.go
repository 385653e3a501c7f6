package lexer

import (
	"lox/internal/source"
	"lox/internal/token"
)

// Lexer performs one maximal-munch pass over a single source file.
// Конструируется на один файл, держит состояние только своего прохода.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен. Пробелы и комментарии
// пропускаются; ошибочный вход репортится и пропускается, проход не
// прерывается. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		// 2) Съесть trivia: пробелы, переводы строк, комментарии
		lx.skipTrivia()

		// 3) EOF → терминальный токен с пустой лексемой на текущей строке
		if lx.cursor.EOF() {
			return token.Token{
				Kind:   token.EOF,
				Lexeme: "",
				Line:   lx.cursor.Line,
			}
		}

		// 4) Посмотреть текущий байт и выбрать сканер
		b := lx.cursor.Peek()

		switch {
		case isAlpha(b):
			return lx.scanIdentOrKeyword()

		case isDigit(b):
			return lx.scanNumber()

		case b == '"':
			tok, ok := lx.scanString()
			if !ok {
				continue // ошибка уже зарепорчена, продолжаем с текущей позиции
			}
			return tok

		default:
			tok, ok := lx.scanOperatorOrPunct()
			if !ok {
				continue // неизвестный символ пропущен
			}
			return tok
		}
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Line returns the cursor's current 1-based line.
func (lx *Lexer) Line() uint32 {
	return lx.cursor.Line
}
