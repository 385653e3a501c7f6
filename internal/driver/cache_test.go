package driver

import (
	"os"
	"path/filepath"
	"testing"

	"lox/internal/token"
)

func TestTokenCache_RoundTrip(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{1, 2, 3}
	in := &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   "main.lox",
		Tokens: []CachedToken{
			{Kind: uint8(token.KwVar), Lexeme: "var", Line: 1},
			{Kind: uint8(token.EOF), Line: 1},
		},
		Diags: []CachedDiag{
			{Severity: 2, Code: 1001, Line: 1, Message: "unexpected character '@'"},
		},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out TokenPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("want cache hit")
	}
	if out.Path != in.Path || len(out.Tokens) != 2 || len(out.Diags) != 1 {
		t.Errorf("payload mismatch: %+v", out)
	}
	if out.Tokens[0].Lexeme != "var" {
		t.Errorf("lexeme = %q", out.Tokens[0].Lexeme)
	}
}

func TestTokenCache_Miss(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out TokenPayload
	hit, err := cache.Get([32]byte{9, 9, 9}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("want miss for unknown key")
	}
}

func TestTokenCache_SchemaMismatch(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := [32]byte{7}
	if err := cache.Put(key, &TokenPayload{Schema: tokenCacheSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}
	var out TokenPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("stale schema must be treated as a miss")
	}
}

func TestTokenizeWithCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lox")
	if err := os.WriteFile(path, []byte("var a = 1; @"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache, err := OpenTokenCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	cold, cached, err := TokenizeWithCache(cache, path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if cached {
		t.Fatal("first pass must be a miss")
	}

	warm, cached, err := TokenizeWithCache(cache, path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !cached {
		t.Fatal("second pass must hit the cache")
	}

	if len(warm.Tokens) != len(cold.Tokens) {
		t.Fatalf("token counts differ: %d vs %d", len(warm.Tokens), len(cold.Tokens))
	}
	for i := range cold.Tokens {
		if warm.Tokens[i] != cold.Tokens[i] {
			t.Errorf("token[%d] differs: %+v vs %+v", i, warm.Tokens[i], cold.Tokens[i])
		}
	}
	if warm.Bag.Len() != cold.Bag.Len() {
		t.Errorf("diag counts differ: %d vs %d", warm.Bag.Len(), cold.Bag.Len())
	}
	// у кэшированной диагностики остаётся строка, спан — нет
	if warm.Bag.Len() > 0 {
		d := warm.Bag.Items()[0]
		if d.Line == 0 {
			t.Error("cached diagnostic lost its line")
		}
		if !d.Primary.Empty() {
			t.Error("cached diagnostic should not carry a span")
		}
	}
}

func TestTokenizeWithCache_ChangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lox")
	if err := os.WriteFile(path, []byte("var a;"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache, err := OpenTokenCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := TokenizeWithCache(cache, path, 10); err != nil {
		t.Fatal(err)
	}

	// другое содержимое — другой хэш, кэш не должен сработать
	if err := os.WriteFile(path, []byte("var b;"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, cached, err := TokenizeWithCache(cache, path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if cached {
		t.Fatal("changed content must miss the cache")
	}
	if res.Tokens[1].Lexeme != "b" {
		t.Errorf("ident = %q, want %q", res.Tokens[1].Lexeme, "b")
	}
}
