package timestamp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BaksiLi/sex-stats/internal/model"
)

func TestParse_DashedGrammar(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  model.Timestamp
	}{
		{"with seconds", "2021-05-01*14:30:05", model.Timestamp{Year: 2021, Month: 5, Day: 1, Hour: 14, Minute: 30, Second: 5}},
		{"without seconds", "2021-05-01*14:30", model.Timestamp{Year: 2021, Month: 5, Day: 1, Hour: 14, Minute: 30}},
		{"trailing text", "2021-05-01*14:30 3 times oral", model.Timestamp{Year: 2021, Month: 5, Day: 1, Hour: 14, Minute: 30}},
		{"single digit hour", "2021-12-31*9:05", model.Timestamp{Year: 2021, Month: 12, Day: 31, Hour: 9, Minute: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_SlashedGrammar(t *testing.T) {
	p := NewParser()

	got, err := p.Parse("01/05/2021 14:30:05")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := model.Timestamp{Year: 2021, Month: 5, Day: 1, Hour: 14, Minute: 30, Second: 5}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_TwoDigitYearPivot(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name     string
		input    string
		wantYear int
	}{
		{"dashed 2000s", "21-05-01*14:30", 2021},
		{"dashed 1900s", "99-05-01*14:30", 1999},
		{"dashed pivot boundary", "70-05-01*14:30", 1970},
		{"dashed below pivot", "69-05-01*14:30", 2069},
		{"slashed 2000s", "01/05/21 14:30", 2021},
		{"slashed 1900s", "01/05/99 14:30", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got.Year != tt.wantYear {
				t.Errorf("Parse(%q).Year = %d, want %d", tt.input, got.Year, tt.wantYear)
			}
		})
	}
}

// The same nominal date must normalize identically through both grammars.
func TestParse_PivotConsistentAcrossGrammars(t *testing.T) {
	p := NewParser()

	for _, yy := range []string{"00", "21", "69", "70", "85", "99"} {
		dashed, err := p.Parse(yy + "-05-01*14:30")
		if err != nil {
			t.Fatalf("dashed parse for year %s: %v", yy, err)
		}
		slashed, err := p.Parse("01/05/" + yy + " 14:30")
		if err != nil {
			t.Fatalf("slashed parse for year %s: %v", yy, err)
		}
		if dashed != slashed {
			t.Errorf("year %s: dashed %+v != slashed %+v", yy, dashed, slashed)
		}
	}
}

// Reformatting a parsed timestamp into either grammar and reparsing must
// yield an equal timestamp.
func TestParse_RoundTrip(t *testing.T) {
	p := NewParser()

	stamps := []model.Timestamp{
		{Year: 2021, Month: 5, Day: 1, Hour: 14, Minute: 30, Second: 5},
		{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59},
		{Year: 2020, Month: 1, Day: 10, Hour: 0, Minute: 0, Second: 0},
	}

	for _, ts := range stamps {
		dashed := fmt.Sprintf("%04d-%02d-%02d*%02d:%02d:%02d", ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
		slashed := fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d", ts.Day, ts.Month, ts.Year, ts.Hour, ts.Minute, ts.Second)

		for _, raw := range []string{dashed, slashed} {
			got, err := p.Parse(raw)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", raw, err)
			}
			if got != ts {
				t.Errorf("Parse(%q) = %+v, want %+v", raw, got, ts)
			}
		}
	}
}

func TestParse_Unparseable(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "not a log entry"},
		{"empty", ""},
		{"date only", "2021-05-01"},
		{"wrong separator", "2021-05-01 14:30"},
		{"month out of range", "2021-13-01*14:30"},
		{"minute out of range", "2021-05-01*14:61"},
		{"timestamp not at start", "x 2021-05-01*14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			if !errors.Is(err, ErrUnparseable) {
				t.Errorf("Parse(%q) error = %v, want ErrUnparseable", tt.input, err)
			}
		})
	}
}

// Lexical day acceptance: impossible calendar dates pass the grammar and are
// rejected only at instant conversion.
func TestParse_LexicalDayThenInvalidDate(t *testing.T) {
	p := NewParser()

	ts, err := p.Parse("2021-02-31*14:30")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if ts.Day != 31 {
		t.Fatalf("Day = %d, want 31", ts.Day)
	}
	if _, err := ts.Time(); !errors.Is(err, model.ErrInvalidDate) {
		t.Errorf("Time() error = %v, want ErrInvalidDate", err)
	}
}
