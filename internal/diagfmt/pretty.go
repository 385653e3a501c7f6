package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lox/internal/diag"
	"lox/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColors := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}

	for _, d := range bag.Items() {
		if int(d.Primary.File) >= fs.Len() || (d.Primary.Empty() && d.Line == 0) {
			// диагностика без привязки к файлу (например, ошибка загрузки)
			fmt.Fprintf(w, "%s [%s]: %s\n", d.Severity, d.Code.ID(), d.Message)
			continue
		}
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		if d.Primary.Empty() && d.Line != 0 {
			// спан не сохранился (например, кэш) — остаётся только строка
			start = source.LineCol{Line: d.Line, Col: 1}
		}

		sev := d.Severity.String()
		if opts.Color {
			if c, ok := sevColors[d.Severity]; ok {
				sev = c.Sprint(sev)
			}
		}

		fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
			formatPath(f.Path, opts.PathMode), start.Line, start.Col, sev, d.Code.ID(), d.Message)

		writeContext(w, f, d.Primary, start, opts)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				nStart, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
					formatPath(nf.Path, opts.PathMode), nStart.Line, nStart.Col, n.Msg)
			}
		}
	}
}

// writeContext печатает строку исходника и каретку под span.
func writeContext(w io.Writer, f *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	if opts.Context <= 0 || sp.Empty() {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	// каретка: ширина префикса считается по реальной ширине рун
	prefix := line
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	ulen := int(sp.Len())
	// подчёркивание не выходит за конец строки
	if rest := len(line) - int(start.Col) + 1; ulen > rest {
		ulen = rest
	}
	if ulen < 1 {
		ulen = 1
	}

	marker := "^" + strings.Repeat("~", ulen-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
