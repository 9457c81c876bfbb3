package logger

import (
	"bytes"
	"testing"
)

func TestInfoWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Infof("Loaded %d words from %s.", 3, "list.txt")
	if got := buf.String(); got != "Loaded 3 words from list.txt.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestInfoWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Infof("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output in quiet mode, got %q", buf.String())
	}
}

func TestErrorAlwaysPrinted(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Errorf("Failed to open %s!", "missing.txt")
	// A bytes.Buffer is not a terminal, so the prefix is rendered without color.
	if got := buf.String(); got != "ERROR: Failed to open missing.txt!\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDiscard(t *testing.T) {
	Discard.Infof("x")
	Discard.Errorf("y")
}
