package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Indicator", "Value", "Met"}
	rows := [][]string{
		{"ETR target", "28.75", "no"},
		{"Effect size", "0.29"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Indicator    Value  Met" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "ETR target   28.75  no" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Effect size   0.29" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"名前", "Score"}, [][]string{{"ab", "1.0"}}, map[int]bool{1: true})
	if lines[1] != "ab      1.0" {
		t.Fatalf("unexpected wide-rune padding: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
