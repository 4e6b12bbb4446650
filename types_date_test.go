package wealth

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"15/01/2025", NewDate(2025, time.January, 15), false},
		{"1/7/2024", NewDate(2024, time.July, 1), false},
		{" 15/01/2025 ", NewDate(2025, time.January, 15), false},
		{"2025-01-15", Date{}, true},
		{"15/01", Date{}, true},
		{"32/01/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q): want error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.July, 5)
	if got := d.String(); got != "05/07/2024" {
		t.Errorf("String() = %q, want %q", got, "05/07/2024")
	}
}

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		start    Date
		n        int
		expected Date
	}{
		{NewDate(2024, time.July, 15), 1, NewDate(2024, time.August, 15)},
		{NewDate(2024, time.December, 1), 1, NewDate(2025, time.January, 1)},
		{NewDate(2024, time.July, 15), -5, NewDate(2024, time.February, 15)},
		{NewDate(2024, time.July, 15), 0, NewDate(2024, time.July, 15)},
	}
	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.n); got != tt.expected {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.start, tt.n, got, tt.expected)
		}
	}
}

func TestDateSameMonth(t *testing.T) {
	a := NewDate(2024, time.July, 1)
	b := NewDate(2024, time.July, 31)
	c := NewDate(2023, time.July, 15)
	if !a.SameMonth(b) {
		t.Errorf("%v and %v should be the same month", a, b)
	}
	if a.SameMonth(c) {
		t.Errorf("%v and %v differ by year, must not match", a, c)
	}
}

func TestDateMonthLabel(t *testing.T) {
	tests := []struct {
		date     Date
		expected string
	}{
		{NewDate(2024, time.July, 15), "jul 24"},
		{NewDate(2025, time.January, 1), "ene 25"},
		{NewDate(2024, time.December, 31), "dic 24"},
		{NewDate(2003, time.February, 1), "feb 03"},
	}
	for _, tt := range tests {
		if got := tt.date.MonthLabel(); got != tt.expected {
			t.Errorf("%v.MonthLabel() = %q, want %q", tt.date, got, tt.expected)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.July, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"05/07/2024"` {
		t.Errorf("marshaled %s, want %q", data, `"05/07/2024"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip gave %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"2024-07-05"`), &back); err == nil {
		t.Error("ISO date string must be rejected")
	}
}
