package bills

import (
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	t.Parallel()
	want := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
	}{
		{name: "iso", in: "2025-03-07"},
		{name: "iso with time", in: "2025-03-07 14:22:01"},
		{name: "rfc3339", in: "2025-03-07T14:22:01Z"},
		{name: "slash iso", in: "2025/03/07"},
		{name: "us padded", in: "03/07/2025"},
		{name: "us short", in: "3/7/2025"},
		{name: "month abbrev", in: "Mar 7, 2025"},
		{name: "month full", in: "March 7, 2025"},
		{name: "surrounding whitespace", in: "  2025-03-07  "},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			if !ok {
				t.Fatalf("ParseDate(%q) not ok", tt.in)
			}
			if !got.Equal(want) {
				t.Fatalf("ParseDate(%q) got %s, want %s", tt.in, got, want)
			}
		})
	}
}

func TestParseDateNormalizesToMidnightUTC(t *testing.T) {
	t.Parallel()
	got, ok := ParseDate("2025-06-15T23:59:59+09:00")
	if !ok {
		t.Fatalf("ParseDate not ok")
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Fatalf("expected midnight UTC, got %s", got)
	}
	if got.Day() != 15 {
		t.Fatalf("expected calendar day preserved, got %s", got)
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "   ", "not a date", "2025-13-40", "20250307"} {
		if _, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q) unexpectedly ok", in)
		}
	}
}

func TestFallbackConstants(t *testing.T) {
	t.Parallel()
	if FallbackStart.Format("2006-01-02") != "2020-01-01" {
		t.Fatalf("unexpected fallback start %s", FallbackStart)
	}
	if FallbackEnd.Format("2006-01-02") != "2025-12-31" {
		t.Fatalf("unexpected fallback end %s", FallbackEnd)
	}
	if !FallbackStart.Before(FallbackEnd) {
		t.Fatalf("fallback window is inverted")
	}
}
