package driver

import (
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/source"
	"lox/internal/token"
)

// TokenizeResult bundles one completed scanning pass.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize загружает файл с диска и выполняет один проход сканера.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scanFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource сканирует готовый буфер (строка REPL, тест, stdin).
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return scanFile(fs, fileID, maxDiagnostics)
}

// scanFile — общий проход: лексер с interner'ом и bag'ом, все токены до EOF.
func scanFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	tokens := scanLoadedFile(fs, fileID, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Tokens:  tokens,
		Bag:     bag,
	}
}

func scanLoadedFile(fs *source.FileSet, fileID source.FileID, bag *diag.Bag) []token.Token {
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Interner: source.NewInterner(),
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}
