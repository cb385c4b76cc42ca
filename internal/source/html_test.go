package source

import (
	"strings"
	"testing"
)

func TestHTMLSource_BlocksBecomeLines(t *testing.T) {
	input := `<html><head><title>Задачник</title><style>p{}</style></head><body>
<h2>Ответы и советы</h2>
<p>1. а) -1 б) 1.</p>
<script>ignored()</script>
</body></html>`

	s := &HTMLSource{}
	lines, err := s.Lines(strings.NewReader(input), "zadachi.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Ответы и советы",
		"1. а) -1 б) 1.",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d] = %q, want %q", i, lines[i], w)
		}
	}
}

func TestHTMLSource_ListItems(t *testing.T) {
	input := `<body><p>3. Решите уравнения:</p><ul><li>а) х+1=0</li><li>б) х-1=0</li></ul></body>`

	s := &HTMLSource{}
	lines, err := s.Lines(strings.NewReader(input), "list.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"3. Решите уравнения:", "а) х+1=0", "б) х-1=0"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d] = %q, want %q", i, lines[i], w)
		}
	}
}
