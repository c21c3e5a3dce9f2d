package timeutil

import (
	"testing"
	"time"
)

func TestParseSpanComposite(t *testing.T) {
	dur, label, err := ParseSpan("1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 9 * Day
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseSpanNegative(t *testing.T) {
	dur, label, err := ParseSpan("-3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != -3*Day {
		t.Fatalf("expected -3 days, got %v", dur)
	}
	if label != "-3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseSpanInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3h", "0d"} {
		if _, _, err := ParseSpan(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatSpanDropsSubDay(t *testing.T) {
	if got := FormatSpan(8*Day + 5*time.Hour); got != "1w1d" {
		t.Fatalf("unexpected label: %s", got)
	}
}
