package diagfmt

import (
	"encoding/json"
	"io"

	"lox/internal/diag"
	"lox/internal/source"
)

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Path     string `json:"path,omitempty"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col,omitempty"`
	Message  string `json:"message"`
}

// DiagnosticsJSON выводит диагностики в JSON формате (ожидается
// bag.Sort() заранее).
func DiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	output := make([]DiagnosticOutput, 0, bag.Len())

	for _, d := range bag.Items() {
		out := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Line:     d.Line,
			Message:  d.Message,
		}
		if !d.Primary.Empty() && int(d.Primary.File) < fs.Len() {
			f := fs.Get(d.Primary.File)
			start, _ := fs.Resolve(d.Primary)
			out.Path = f.Path
			out.Col = start.Col
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
