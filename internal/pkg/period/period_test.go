package period

import (
	"testing"
	"time"
)

func TestQuarterID(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-01", "2025-Q1"},
		{"2025-03-31", "2025-Q1"},
		{"2025-04-01", "2025-Q2"},
		{"2025-08-15", "2025-Q3"},
		{"2025-12-31", "2025-Q4"},
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := QuarterID(d); got != c.want {
			t.Errorf("QuarterID(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestResolve(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2025-02-10")
	if got := Resolve("", d); got != "2025-Q1" {
		t.Errorf("Resolve(\"\") = %q, want 2025-Q1", got)
	}
	if got := Resolve("2024-Q4", d); got != "2024-Q4" {
		t.Errorf("Resolve override = %q, want 2024-Q4", got)
	}
}
