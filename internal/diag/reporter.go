package diag

import "lox/internal/source"

// Reporter — минимальный контракт получения диагностик от сканера.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, line uint32, primary source.Span, msg string, notes []Note)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, line uint32, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Line: line, Primary: primary, Notes: notes,
	})
}

// NopReporter молча отбрасывает диагностики.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, uint32, source.Span, string, []Note) {}
