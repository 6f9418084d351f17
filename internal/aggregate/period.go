// Package aggregate groups normalized record sets into chart-ready buckets.
// All grouping functions are pure over their input record set.
package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/BaksiLi/sex-stats/internal/model"
)

// Granularity names a calendar-period bucket size.
type Granularity string

const (
	Week      Granularity = "W"
	SemiMonth Granularity = "SM"
	Month     Granularity = "M"
	Quarter   Granularity = "Q"
	Year      Granularity = "A"
	Hour      Granularity = "H"
)

// ErrInvalidGranularity reports a period token outside the enumerated set.
var ErrInvalidGranularity = errors.New("aggregate: invalid granularity")

// ParseGranularity validates a period token against the enumerated set.
func ParseGranularity(token string) (Granularity, error) {
	switch g := Granularity(token); g {
	case Week, SemiMonth, Month, Quarter, Year, Hour:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, token)
	}
}

// PeriodBucket is one calendar-period group: the number of records per
// category plus the overall repeat-count sum for the period.
type PeriodBucket struct {
	Start          time.Time
	Label          string
	CategoryCounts map[string]int
	RepeatSum      int
}

// GroupByPeriod buckets records into calendar periods of the given
// granularity. Buckets are contiguous from the earliest to the latest record
// (periods with no records appear with zero counts, matching a resample over
// the time axis) and ordered chronologically. An empty record set yields no
// buckets.
func GroupByPeriod(records model.RecordSet, g Granularity) ([]PeriodBucket, error) {
	if _, err := ParseGranularity(string(g)); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	minT, maxT := records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(minT) {
			minT = r.Timestamp
		}
		if r.Timestamp.After(maxT) {
			maxT = r.Timestamp
		}
	}

	var buckets []PeriodBucket
	index := make(map[int64]int)
	last := periodStart(maxT, g)
	for start := periodStart(minT, g); !start.After(last); start = periodNext(start, g) {
		index[start.Unix()] = len(buckets)
		buckets = append(buckets, PeriodBucket{
			Start:          start,
			Label:          periodLabel(start, g),
			CategoryCounts: make(map[string]int),
		})
	}

	for _, r := range records {
		i := index[periodStart(r.Timestamp, g).Unix()]
		buckets[i].CategoryCounts[r.Category]++
		buckets[i].RepeatSum += r.RepeatCount
	}

	return buckets, nil
}

// Categories returns the sorted set of category labels present in buckets.
func Categories(buckets []PeriodBucket) []string {
	set := make(map[string]struct{})
	for _, b := range buckets {
		for c := range b.CategoryCounts {
			set[c] = struct{}{}
		}
	}
	return sortedSet(set)
}

func periodStart(t time.Time, g Granularity) time.Time {
	y, m, d := t.Date()
	switch g {
	case Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
	case Week:
		// ISO convention: weeks start on Monday.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, t.Location())
	case SemiMonth:
		if d < 16 {
			return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
		}
		return time.Date(y, m, 16, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case Quarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, t.Location())
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return t
}

func periodNext(start time.Time, g Granularity) time.Time {
	switch g {
	case Hour:
		y, m, d := start.Date()
		return time.Date(y, m, d, start.Hour()+1, 0, 0, 0, start.Location())
	case Week:
		return start.AddDate(0, 0, 7)
	case SemiMonth:
		if start.Day() == 1 {
			y, m, _ := start.Date()
			return time.Date(y, m, 16, 0, 0, 0, 0, start.Location())
		}
		y, m, _ := start.Date()
		return time.Date(y, m+1, 1, 0, 0, 0, 0, start.Location())
	case Quarter:
		return start.AddDate(0, 3, 0)
	case Year:
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0) // Month
}

func periodLabel(start time.Time, g Granularity) string {
	switch g {
	case Hour:
		return start.Format("15:04")
	case Week, SemiMonth:
		return start.Format("Jan 02")
	case Quarter:
		q := (int(start.Month())-1)/3 + 1
		return fmt.Sprintf("%02dQ%d", start.Year()%100, q)
	case Year:
		return start.Format("2006")
	}
	return start.Format("06-01") // Month: yy-mm
}
