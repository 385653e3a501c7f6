package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"lox/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme,omitempty"`
	Line   uint32 `json:"line"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		kind := tok.Kind.String()
		// выравнивание по реальной ширине, лексемы могут содержать
		// широкие руны
		pad := 12 - runewidth.StringWidth(kind)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, "%3d: %s%*s", i+1, kind, pad, "")

		if tok.Lexeme != "" {
			fmt.Fprintf(w, " %q", tok.Lexeme)
		}
		fmt.Fprintf(w, " at line %d\n", tok.Line)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
