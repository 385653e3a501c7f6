package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lox/internal/diag"
	"lox/internal/source"
)

func TestPretty_HeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.lox", []byte("var @ x;"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, 1,
		source.Span{File: id, Start: 4, End: 5}, "unexpected character '@'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 1})
	out := buf.String()

	if !strings.Contains(out, "bad.lox:1:5: ERROR [LEX1001]: unexpected character '@'") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "var @ x;") {
		t.Errorf("missing context line:\n%s", out)
	}
	// каретка под '@' (4 пробела + ^)
	if !strings.Contains(out, "\n      ^\n") {
		t.Errorf("missing caret:\n%s", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("s.lox", []byte("\"abc"))

	bag := diag.NewBag(10)
	d := diag.NewError(diag.LexUnterminatedString, 1,
		source.Span{File: id, Start: 0, End: 4}, "unterminated string: abc")
	d = d.WithNote(source.Span{File: id, Start: 0, End: 1}, "string starts here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "note: string starts here") {
		t.Errorf("missing note:\n%s", out)
	}
}

func TestPretty_NoContext(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.lox", []byte("@"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, 1,
		source.Span{File: id, Start: 0, End: 1}, "unexpected character '@'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 0})

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("context disabled, want a single line:\n%q", buf.String())
	}
}

func TestFormatPath(t *testing.T) {
	if got := formatPath("a/b/c.lox", PathModeBasename); got != "c.lox" {
		t.Errorf("basename = %q", got)
	}
	if got := formatPath("a/b/c.lox", PathModeAuto); got != "a/b/c.lox" {
		t.Errorf("auto = %q", got)
	}
}
