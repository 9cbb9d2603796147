package tui

import "testing"

func TestClampString(t *testing.T) {
	if got := clampString("kilometers", 4); got != "kilo…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("feet", 10); got != "feet" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("feet", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPicker(t *testing.T) {
	units := []string{"meters", "feet"}
	if got := renderPicker(units, 1); got != "‹ feet ›" {
		t.Fatalf("got %q", got)
	}
	if got := renderPicker(units, 9); got != "‹ meters ›" {
		t.Fatalf("out of range index should fall back to first, got %q", got)
	}
	if got := renderPicker(nil, 0); got != "(none)" {
		t.Fatalf("got %q", got)
	}
}

func TestWrapIndex(t *testing.T) {
	if wrapIndex(-1, 4) != 3 || wrapIndex(4, 4) != 0 || wrapIndex(2, 4) != 2 {
		t.Fatal("wrapIndex did not wrap")
	}
}
