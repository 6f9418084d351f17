package logparse

import (
	"testing"
	"time"
)

func TestParse_DashedLineWithQualifier(t *testing.T) {
	lp := NewLineParser()

	record, ok := lp.Parse("2021-05-01*14:30 3 times oral (partner)")
	if !ok {
		t.Fatal("expected line to parse")
	}

	want := time.Date(2021, time.May, 1, 14, 30, 0, 0, time.Local)
	if !record.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", record.Timestamp, want)
	}
	if record.RepeatCount != 3 {
		t.Errorf("RepeatCount = %d, want 3", record.RepeatCount)
	}
	if record.Category != "oral (partner)" {
		t.Errorf("Category = %q, want %q", record.Category, "oral (partner)")
	}
}

func TestParse_SlashedLineSingular(t *testing.T) {
	lp := NewLineParser()

	record, ok := lp.Parse("01/05/2021 14:30:05 1 time kissing")
	if !ok {
		t.Fatal("expected line to parse")
	}

	want := time.Date(2021, time.May, 1, 14, 30, 5, 0, time.Local)
	if !record.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", record.Timestamp, want)
	}
	if record.RepeatCount != 1 {
		t.Errorf("RepeatCount = %d, want 1", record.RepeatCount)
	}
	if record.Category != "kissing" {
		t.Errorf("Category = %q, want %q", record.Category, "kissing")
	}
}

func TestParse_SkippedLines(t *testing.T) {
	lp := NewLineParser()

	tests := []struct {
		name string
		line string
	}{
		{"no timestamp", "not a log entry"},
		{"empty line", ""},
		{"timestamp only", "2021-05-01*14:30"},
		{"timestamp without repeat suffix", "2021-05-01*14:30 just a note"},
		{"impossible calendar date", "2021-02-31*14:30 2 times kissing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := lp.Parse(tt.line); ok {
				t.Errorf("Parse(%q) = ok, want skip", tt.line)
			}
		})
	}
}

func TestParse_MultiDigitRepeat(t *testing.T) {
	lp := NewLineParser()

	record, ok := lp.Parse("2021-05-01*14:30 12 times kissing")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if record.RepeatCount != 12 {
		t.Errorf("RepeatCount = %d, want 12", record.RepeatCount)
	}
}
