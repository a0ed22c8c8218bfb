package transform

import (
	"testing"
	"time"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "iso format",
			input: "2023-04-05",
			want:  time.Date(2023, time.April, 5, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "day first format",
			input: "05-04-2023",
			want:  time.Date(2023, time.April, 5, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "iso wins over day-first reading",
			input: "2023-01-02",
			want:  time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "missing",
			input: "",
			ok:    false,
		},
		{
			name:  "garbage",
			input: "not-a-date",
			ok:    false,
		},
		{
			name:  "partial date",
			input: "2023-04",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFlexibleDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseFlexibleDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseFlexibleDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFlexibleDateNeverMisreadsISO(t *testing.T) {
	// "2023-04-05" must parse as year 2023, month 4, day 5 — never with the
	// leading field treated as a day.
	got, ok := parseFlexibleDate("2023-04-05")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if got.Year() != 2023 || got.Month() != time.April || got.Day() != 5 {
		t.Errorf("Got %v, want 2023-04-05", got)
	}
}

func TestParseISODate(t *testing.T) {
	if d := parseISODate("2023-07-15"); d == nil || !d.Equal(time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parseISODate(2023-07-15) = %v", d)
	}
	if d := parseISODate(""); d != nil {
		t.Errorf("parseISODate(\"\") = %v, want nil", d)
	}
	// Day-first values are not accepted by the strict parser.
	if d := parseISODate("15-07-2023"); d != nil {
		t.Errorf("parseISODate(15-07-2023) = %v, want nil", d)
	}
}
