package shift

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWindow(t *testing.T) {
	base := date(2024, time.June, 1)

	tests := []struct {
		code      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"A", time.Date(2024, 6, 1, 6, 0, 0, 0, time.Local), time.Date(2024, 6, 1, 15, 0, 0, 0, time.Local)},
		{"C", time.Date(2024, 6, 1, 14, 0, 0, 0, time.Local), time.Date(2024, 6, 1, 23, 0, 0, 0, time.Local)},
		{"M", time.Date(2024, 6, 1, 22, 0, 0, 0, time.Local), time.Date(2024, 6, 2, 7, 0, 0, 0, time.Local)},
		{"D", time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), time.Date(2024, 6, 1, 23, 59, 59, 0, time.Local)},
	}

	for _, tt := range tests {
		start, end, err := Window(tt.code, base)
		if err != nil {
			t.Fatalf("Window(%q): %v", tt.code, err)
		}
		if !start.Equal(tt.wantStart) {
			t.Errorf("Window(%q) start = %v, want %v", tt.code, start, tt.wantStart)
		}
		if !end.Equal(tt.wantEnd) {
			t.Errorf("Window(%q) end = %v, want %v", tt.code, end, tt.wantEnd)
		}
	}
}

func TestWindowUnknownShift(t *testing.T) {
	if _, _, err := Window("X", date(2024, time.June, 1)); err == nil {
		t.Error("expected error for unknown shift code")
	}
	if _, err := Range("", date(2024, time.June, 1)); err == nil {
		t.Error("expected error for empty shift code")
	}
}

func TestRange(t *testing.T) {
	base := date(2024, time.June, 1)

	tests := []struct {
		code string
		want string
	}{
		{"A", "01/06/2024 06:00 - 01/06/2024 15:00"},
		{"M", "01/06/2024 22:00 - 02/06/2024 07:00"}, // end rolls to next day
		{"D", "01/06/2024 00:00 - 01/06/2024 23:59"},
	}

	for _, tt := range tests {
		got, err := Range(tt.code, base)
		if err != nil {
			t.Fatalf("Range(%q): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("Range(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestHeader(t *testing.T) {
	if got := Header("A"); got == "" || got == Header("C") {
		t.Errorf("Header(A) = %q, want shift-specific greeting", got)
	}
	want := "Selamat malam, berikut rekap problem Zabbix monitoring IFG"
	if got := Header("X"); got != want {
		t.Errorf("Header(X) = %q, want generic fallback %q", got, want)
	}
}

func TestFullName(t *testing.T) {
	if got := FullName("Armin"); got != "Armin Hasni" {
		t.Errorf("FullName(Armin) = %q, want Armin Hasni", got)
	}
	if got := FullName("Unknown Operator"); got != "Unknown Operator" {
		t.Errorf("FullName passthrough = %q, want verbatim", got)
	}
}
