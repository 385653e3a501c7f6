package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит результат сканирования по хэшу содержимого на диске.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the serialized form of one token (spans not cached).
type CachedToken struct {
	Kind   uint8
	Lexeme string
	Line   uint32
}

// CachedDiag is the serialized form of one diagnostic.
type CachedDiag struct {
	Severity uint8
	Code     uint16
	Line     uint32
	Message  string
}

// TokenPayload stores a cached scanning pass.
type TokenPayload struct {
	Schema uint16
	Path   string
	Tokens []CachedToken
	Diags  []CachedDiag
}

// OpenTokenCache initializes and returns a disk cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt открывает кэш в явно заданной директории (тесты).
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "tokens" — для удобства читаемости/очистки.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *TokenCache) Put(key [32]byte, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload from the disk cache.
// Возвращает (false, nil) при промахе или несовпадении схемы.
func (c *TokenCache) Get(key [32]byte, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	// #nosec G304 -- путь построен из hex-хэша
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tokenCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// encodeTokens converts tokens to their cached form.
func encodeTokens(tokens []token.Token) []CachedToken {
	out := make([]CachedToken, len(tokens))
	for i, t := range tokens {
		out[i] = CachedToken{Kind: uint8(t.Kind), Lexeme: t.Lexeme, Line: t.Line}
	}
	return out
}

func decodeTokens(cached []CachedToken) []token.Token {
	out := make([]token.Token, len(cached))
	for i, t := range cached {
		out[i] = token.Token{Kind: token.Kind(t.Kind), Lexeme: t.Lexeme, Line: t.Line}
	}
	return out
}

func encodeDiags(bag *diag.Bag) []CachedDiag {
	items := bag.Items()
	out := make([]CachedDiag, len(items))
	for i, d := range items {
		out[i] = CachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Line:     d.Line,
			Message:  d.Message,
		}
	}
	return out
}

func decodeDiags(cached []CachedDiag, max int) *diag.Bag {
	bag := diag.NewBag(max)
	for _, d := range cached {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Line:     d.Line,
			Message:  d.Message,
		})
	}
	return bag
}

// TokenizeWithCache — как Tokenize, но с поиском по кэшу: ключ — SHA-256
// нормализованного содержимого файла. Возвращает cached=true при попадании.
func TokenizeWithCache(cache *TokenCache, path string, maxDiagnostics int) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	var payload TokenPayload
	if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  decodeTokens(payload.Tokens),
			Bag:     decodeDiags(payload.Diags, maxDiagnostics),
		}, true, nil
	}

	result := scanFile(fs, fileID, maxDiagnostics)

	putErr := cache.Put(file.Hash, &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Tokens: encodeTokens(result.Tokens),
		Diags:  encodeDiags(result.Bag),
	})
	if putErr != nil {
		// кэш — только ускорение; результат сканирования важнее
		return result, false, nil
	}
	return result, false, nil
}
