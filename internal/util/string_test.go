package util

import "testing"

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := TruncateString("hello world", 5); got != "hello..." {
		t.Errorf("truncation wrong: %q", got)
	}
	// Rune-based, so multibyte text is not split mid-character.
	if got := TruncateString("สวัสดีครับ", 6); got != "สวัสดี..." {
		t.Errorf("multibyte truncation wrong: %q", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Hello World  "); got != "hello world" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b"}
	if !Contains(slice, "a") || Contains(slice, "c") {
		t.Error("Contains misbehaving")
	}
}
