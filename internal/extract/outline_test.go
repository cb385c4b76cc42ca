package extract

import "testing"

func TestOutline_ParentResolution(t *testing.T) {
	toc := Outline([]string{
		"Оглавление",
		"1. Введение",
		"1.1. Основы",
		"1.2. Продолжение",
		"2. Следующая глава",
	})

	want := []struct {
		id     int
		name   string
		parent int
	}{
		{1, "Введение", 0},
		{2, "Основы", 1},
		{3, "Продолжение", 1},
		{4, "Следующая глава", 0},
	}
	if len(toc) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %+v", len(want), len(toc), toc)
	}
	for i, w := range want {
		n := toc[i]
		if n.ID != w.id || n.Name != w.name || n.Parent != w.parent {
			t.Errorf("node[%d] = {%d %q %d}, want {%d %q %d}",
				i, n.ID, n.Name, n.Parent, w.id, w.name, w.parent)
		}
	}
}

func TestOutline_TrailingPageNumberStripped(t *testing.T) {
	toc := Outline([]string{
		"Оглавление",
		"1. Введение 5",
		"1.1. Основы счёта 12",
	})
	if len(toc) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(toc))
	}
	if toc[0].Name != "Введение" {
		t.Errorf("expected page number stripped, got %q", toc[0].Name)
	}
	if toc[1].Name != "Основы счёта" {
		t.Errorf("expected page number stripped, got %q", toc[1].Name)
	}
}

func TestOutline_StopsAtFirstNonMatchingLine(t *testing.T) {
	toc := Outline([]string{
		"Оглавление",
		"1. Введение",
		"Предисловие автора",
		"2. Никогда не появится",
	})
	if len(toc) != 1 {
		t.Fatalf("expected scan to stop at prose line, got %+v", toc)
	}
}

func TestOutline_NothingBeforeHeading(t *testing.T) {
	toc := Outline([]string{
		"1. Это задача, а не раздел",
		"Оглавление",
		"3. Настоящий раздел",
	})
	if len(toc) != 1 {
		t.Fatalf("expected 1 node, got %+v", toc)
	}
	if toc[0].Name != "Настоящий раздел" || toc[0].ID != 1 {
		t.Errorf("unexpected node %+v", toc[0])
	}
}

func TestOutline_MissingParentFallsBackToRoot(t *testing.T) {
	// 3.1 arrives without a prior "3." entry: parent stays 0. The
	// fallback is documented behavior, not a resolved hierarchy.
	toc := Outline([]string{
		"Оглавление",
		"3.1. Осиротевший раздел",
	})
	if len(toc) != 1 {
		t.Fatalf("expected 1 node, got %+v", toc)
	}
	if toc[0].Parent != 0 {
		t.Errorf("expected root fallback, got parent %d", toc[0].Parent)
	}
}

func TestOutline_NoHeadingNoNodes(t *testing.T) {
	toc := Outline([]string{
		"1. Задача",
		"2. Ещё задача",
	})
	if len(toc) != 0 {
		t.Fatalf("expected no nodes without the heading, got %+v", toc)
	}
}
