package source

// Interner deduplicates lexeme strings: повторяющиеся идентификаторы в
// одном проходе делят одну копию строки. Не потокобезопасен — один
// Interner на один Scanner.
type Interner struct {
	index map[string]string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{index: make(map[string]string)}
}

// Intern возвращает каноническую копию строки.
func (i *Interner) Intern(s string) string {
	if got, ok := i.index[s]; ok {
		return got
	}
	// Собственная копия, чтобы не держать исходный буфер файла.
	cpy := string([]byte(s))
	i.index[cpy] = cpy
	return cpy
}

// InternBytes возвращает каноническую строку для байтов.
func (i *Interner) InternBytes(b []byte) string {
	if got, ok := i.index[string(b)]; ok { // без аллокации при попадании
		return got
	}
	cpy := string(b)
	i.index[cpy] = cpy
	return cpy
}

// Len возвращает количество уникальных строк.
func (i *Interner) Len() int {
	return len(i.index)
}
