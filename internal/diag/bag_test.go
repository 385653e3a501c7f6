package diag

import (
	"testing"

	"lox/internal/source"
)

func TestBag_AddRespectsLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(LexUnexpectedChar, 1, source.Span{}, "first")) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(NewError(LexUnexpectedChar, 1, source.Span{}, "second")) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(NewError(LexUnexpectedChar, 1, source.Span{}, "third")) {
		t.Fatal("Add above the limit must return false")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag must have no errors or warnings")
	}

	bag.Add(New(SevWarning, UnknownCode, 1, source.Span{}, "warn"))
	if bag.HasErrors() {
		t.Fatal("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("HasWarnings missed the warning")
	}

	bag.Add(NewError(LexUnterminatedString, 2, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Fatal("HasErrors missed the error")
	}
}

func TestBag_SortAndMerge(t *testing.T) {
	a := NewBag(4)
	a.Add(NewError(LexUnexpectedChar, 3, source.Span{File: 0, Start: 20, End: 21}, "late"))
	a.Add(NewError(LexUnexpectedChar, 1, source.Span{File: 0, Start: 5, End: 6}, "early"))

	b := NewBag(4)
	b.Add(NewError(LexUnterminatedString, 2, source.Span{File: 0, Start: 10, End: 12}, "middle"))

	a.Merge(b)
	a.Sort()

	got := a.Items()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}
	if got[0].Message != "early" || got[1].Message != "middle" || got[2].Message != "late" {
		t.Fatalf("wrong order: %q %q %q", got[0].Message, got[1].Message, got[2].Message)
	}
}

func TestBag_Dedup(t *testing.T) {
	bag := NewBag(4)
	sp := source.Span{File: 0, Start: 1, End: 2}
	bag.Add(NewError(LexUnexpectedChar, 1, sp, "dup"))
	bag.Add(NewError(LexUnexpectedChar, 1, sp, "dup"))
	bag.Add(NewError(LexUnexpectedChar, 1, source.Span{File: 0, Start: 3, End: 4}, "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagReporter_ForwardsToBag(t *testing.T) {
	bag := NewBag(4)
	var r Reporter = BagReporter{Bag: bag}

	r.Report(LexUnterminatedString, SevError, 7, source.Span{Start: 2, End: 5}, "unterminated string: abc", nil)

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Line != 7 || d.Code != LexUnterminatedString || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnexpectedChar.ID(); got != "LEX1001" {
		t.Errorf("ID() = %q, want LEX1001", got)
	}
	if got := IOLoadFileError.ID(); got != "IO4001" {
		t.Errorf("ID() = %q, want IO4001", got)
	}
	if got := UnknownCode.ID(); got != "E0000" {
		t.Errorf("ID() = %q, want E0000", got)
	}
}
