package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/BaksiLi/sex-stats/internal/model"
)

func TestClockStep_Thresholds(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 1},
		{50, 1},
		{51, 0.5},
		{100, 0.5},
		{101, 0.25},
		{200, 0.25},
		{201, 0.1},
		{1000, 0.1},
	}

	for _, tt := range tests {
		if got := ClockStep(tt.n); got != tt.want {
			t.Errorf("ClockStep(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// Resolution only gets finer (or stays equal) as the record count grows.
func TestClockStep_MonotonicallyFiner(t *testing.T) {
	prev := ClockStep(1)
	for n := 2; n <= 500; n++ {
		step := ClockStep(n)
		if step > prev {
			t.Fatalf("ClockStep(%d) = %v coarser than ClockStep(%d) = %v", n, step, n-1, prev)
		}
		prev = step
	}
}

func TestClockFraction(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2021, time.May, 1, h, m, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		t    time.Time
		n    int
		want float64
	}{
		{"whole hour rounds down", at(14, 20), 50, 14},
		{"whole hour rounds up", at(14, 40), 50, 15},
		{"whole hour midpoint", at(14, 30), 50, 15},
		{"half hour", at(14, 40), 100, 14.5},
		{"quarter hour", at(14, 40), 200, 14.75},
		{"tenth hour", at(14, 40), 201, 14.7},
		{"exact hour", at(9, 0), 50, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClockFraction(tt.t, tt.n); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClockFraction(%v, %d) = %v, want %v", tt.t, tt.n, got, tt.want)
			}
		})
	}
}

// Exactly 50 records stay on whole-hour precision.
func TestGroupByClock_FiftyRecordsWholeHour(t *testing.T) {
	records := make(model.RecordSet, 0, 50)
	for i := 0; i < 50; i++ {
		ts := time.Date(2021, time.May, 1+i%28, 10+i%12, (i*7)%60, 0, 0, time.Local)
		records = append(records, model.LogRecord{Timestamp: ts, RepeatCount: 1, Category: "kissing"})
	}

	groups := GroupByClock(records)
	for _, b := range groups.Buckets {
		if b.Hour != math.Trunc(b.Hour) {
			t.Errorf("bucket hour %v not whole-hour at n=50", b.Hour)
		}
	}
}

func TestGroupByClock_GroupsAndMean(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2021, time.May, 1, h, m, 0, 0, time.Local)
	}
	records := model.RecordSet{
		{Timestamp: at(9, 10), RepeatCount: 1, Category: "a"},
		{Timestamp: at(9, 20), RepeatCount: 1, Category: "a"},
		{Timestamp: at(9, 5), RepeatCount: 1, Category: "b"},
		{Timestamp: at(22, 0), RepeatCount: 1, Category: "b"},
	}

	groups := GroupByClock(records)

	if len(groups.Buckets) != 2 {
		t.Fatalf("len(Buckets) = %d, want 2", len(groups.Buckets))
	}
	if groups.Buckets[0].Hour != 9 || groups.Buckets[1].Hour != 22 {
		t.Errorf("bucket hours = %v, %v", groups.Buckets[0].Hour, groups.Buckets[1].Hour)
	}
	if got := groups.Buckets[0].CategoryCounts; got["a"] != 2 || got["b"] != 1 {
		t.Errorf("9h counts = %v", got)
	}
	if len(groups.Categories) != 2 || groups.Categories[0] != "a" || groups.Categories[1] != "b" {
		t.Errorf("Categories = %v", groups.Categories)
	}

	means := groups.Mean()
	// 9h: (2+1)/2 categories present; 22h: only b present.
	if math.Abs(means[0]-1.5) > 1e-9 || math.Abs(means[1]-1) > 1e-9 {
		t.Errorf("Mean = %v", means)
	}

	if groups.MaxCount() != 2 {
		t.Errorf("MaxCount = %d, want 2", groups.MaxCount())
	}

	// CountsFor covers only buckets where the category appears.
	if got := groups.CountsFor("a"); len(got) != 1 || got[0] != 2 {
		t.Errorf("CountsFor(a) = %v", got)
	}
	if got := groups.CountsFor("b"); len(got) != 2 {
		t.Errorf("CountsFor(b) = %v", got)
	}
}

func TestGroupByClock_Empty(t *testing.T) {
	groups := GroupByClock(nil)
	if len(groups.Buckets) != 0 || len(groups.Categories) != 0 {
		t.Errorf("empty input produced %+v", groups)
	}
}
