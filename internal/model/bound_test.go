package model

import "testing"

func TestParseBound(t *testing.T) {
	b, err := ParseBound("8-12")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Min != 8 || b.Max != 12 {
		t.Fatalf("unexpected bound: %+v", b)
	}
	if b.String() != "8-12" {
		t.Fatalf("unexpected string form: %q", b.String())
	}
}

func TestParseBoundAcceptsInvertedRange(t *testing.T) {
	b, err := ParseBound("5-3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for n := 0; n <= MaxWordLen; n++ {
		if b.Contains(n) {
			t.Fatalf("inverted bound should match nothing, matched %d", n)
		}
	}
}

func TestParseBoundRejects(t *testing.T) {
	for _, token := range []string{"", "8", "8-", "-8", "0-4", "4-0", "1-17", "a-b", "3-x", "1-2-3"} {
		if _, err := ParseBound(token); err == nil {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}

func TestListsValidate(t *testing.T) {
	third := &WordList{Words: []string{"a"}}
	lists := Lists{Primary: WordList{Words: []string{"a"}}, Tertiary: third}
	if err := lists.Validate(); err == nil {
		t.Fatalf("expected tertiary without secondary to fail")
	}
	lists.Secondary = &WordList{Words: []string{"b"}}
	if err := lists.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lists.Len() != 3 || len(lists.All()) != 3 {
		t.Fatalf("expected 3 lists, got %d", lists.Len())
	}
}
