package source

import (
	"reflect"
	"strings"
	"testing"
)

func TestTextSource_LinesInOrder(t *testing.T) {
	input := "1. Решите уравнение\nа) х+1=0\n\nОтветы и советы\n1. а) -1"
	s := &TextSource{}
	lines, err := s.Lines(strings.NewReader(input), "zadachi.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"1. Решите уравнение",
		"а) х+1=0",
		"",
		"Ответы и советы",
		"1. а) -1",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestTextSource_NoTrimming(t *testing.T) {
	// Normalization belongs to the extraction engine; the source must
	// hand lines over untouched.
	s := &TextSource{}
	lines, err := s.Lines(strings.NewReader("  12.  Задача  "), "raw.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "  12.  Задача  " {
		t.Errorf("expected raw line preserved, got %q", lines)
	}
}

func TestTextSource_EmptyInput(t *testing.T) {
	s := &TextSource{}
	lines, err := s.Lines(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines for empty input, got %q", lines)
	}
}
