package stats

import (
	"testing"

	"github.com/verte-zerg/worgen/internal/model"
)

func TestEstimateBytes(t *testing.T) {
	if got := EstimateBytes(1000, model.Bound{Min: 8, Max: 12}); got != 11000 {
		t.Fatalf("expected 11000, got %d", got)
	}
	if got := EstimateBytes(0, model.Bound{Min: 1, Max: 16}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestListSummary(t *testing.T) {
	lists := model.Lists{
		Primary:   model.WordList{Path: "a.txt", Bound: model.Bound{Min: 3, Max: 3}, Words: []string{"cat", "dog"}},
		Secondary: &model.WordList{Path: "fish.txt", Bound: model.Bound{Min: 4, Max: 4}, Words: []string{"fish"}},
	}
	lines := ListSummary(lists, model.Bound{Min: 7, Max: 7})
	want := []string{
		"List File     Bounds Words",
		"1    a.txt    3-3        2",
		"2    fish.txt 4-4        1",
		"out  -        7-7        -",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
