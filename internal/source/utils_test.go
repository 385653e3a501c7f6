package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"", "", false},
		{"plain\n", "plain\n", false},
		{"a\r\nb", "a\nb", true},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"lone\rcr", "lone\rcr", false}, // одиночный \r не трогаем
		{"\r\n\r\n", "\n\n", true},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if !bytes.Equal(got, []byte(tt.want)) || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = (%q, %v), want (%q, %v)",
				tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var")...)
	got, had := removeBOM(withBOM)
	if !had || string(got) != "var" {
		t.Fatalf("removeBOM failed: got %q, had=%v", got, had)
	}
	got, had = removeBOM([]byte("var"))
	if had || string(got) != "var" {
		t.Fatalf("removeBOM on plain input: got %q, had=%v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nx")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1}, // 'a'
		{1, 1, 2}, // 'b'
		{2, 1, 3}, // '\n' принадлежит строке, которую завершает
		{3, 2, 1}, // 'c'
		{5, 2, 3}, // '\n'
		{6, 3, 1}, // пустая строка
		{7, 4, 1}, // 'x'
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(off=%d) = %d:%d, want %d:%d",
				tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}

func TestToLineCol_NoNewlines(t *testing.T) {
	got := toLineCol(nil, 5)
	if got.Line != 1 || got.Col != 6 {
		t.Fatalf("toLineCol(nil, 5) = %d:%d, want 1:6", got.Line, got.Col)
	}
}
