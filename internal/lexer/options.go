package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
)

// Options configures one Lexer instance.
type Options struct {
	// Reporter может быть nil — тогда ошибки игнорируем (но продолжаем лексить).
	Reporter diag.Reporter
	// Interner, если задан, дедуплицирует лексемы идентификаторов.
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, line uint32, sp source.Span, msg string, notes ...diag.Note) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, line, sp, msg, notes)
	}
}
