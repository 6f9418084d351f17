package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/BaksiLi/sex-stats/internal/model"
)

// ClockStep returns the fraction-of-hour resolution used for time-of-day
// grouping of n records. Resolution scales with dataset size so that tiny
// datasets are not binned below what their sample count supports; divisions
// below six minutes are never used.
func ClockStep(n int) float64 {
	switch {
	case n <= 50:
		return 1 // whole hour
	case n <= 100:
		return 0.5 // every 30 minutes
	case n <= 200:
		return 0.25 // every 15 minutes
	default:
		return 0.1 // every 6 minutes
	}
}

// ClockFraction maps an instant to a fractional hour of day at the
// resolution for n records. Minutes are rounded half away from zero to the
// nearest step and added to the integer hour, so a 14:40 record in a small
// dataset lands on 15.0.
func ClockFraction(t time.Time, n int) float64 {
	minute := float64(t.Minute())
	var step float64
	switch {
	case n <= 50:
		step = math.Round(minute / 60)
	case n <= 100:
		step = math.Round(minute/60*2) / 2
	case n <= 200:
		step = math.Round(minute/60*4) / 4
	default:
		step = math.Round(minute/60*10) / 10
	}
	return float64(t.Hour()) + step
}

// ClockBucket is one fractional-hour group with per-category record counts.
type ClockBucket struct {
	Hour           float64
	CategoryCounts map[string]int
}

// ClockGroups is the time-of-day view of a record set: fractional-hour
// buckets in ascending order plus the sorted category set.
type ClockGroups struct {
	Buckets    []ClockBucket
	Categories []string
}

// GroupByClock buckets records by fractional hour of day at the resolution
// implied by the record count.
func GroupByClock(records model.RecordSet) ClockGroups {
	n := len(records)
	byHour := make(map[float64]map[string]int)
	categories := make(map[string]struct{})

	for _, r := range records {
		h := ClockFraction(r.Timestamp, n)
		if byHour[h] == nil {
			byHour[h] = make(map[string]int)
		}
		byHour[h][r.Category]++
		categories[r.Category] = struct{}{}
	}

	hours := make([]float64, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Float64s(hours)

	buckets := make([]ClockBucket, 0, len(hours))
	for _, h := range hours {
		buckets = append(buckets, ClockBucket{Hour: h, CategoryCounts: byHour[h]})
	}

	return ClockGroups{Buckets: buckets, Categories: sortedSet(categories)}
}

// Mean returns, per bucket, the mean record count across the categories
// present in that bucket (absent categories do not drag the mean down).
func (g ClockGroups) Mean() []float64 {
	means := make([]float64, len(g.Buckets))
	for i, b := range g.Buckets {
		sum, present := 0, 0
		for _, c := range b.CategoryCounts {
			sum += c
			present++
		}
		if present > 0 {
			means[i] = float64(sum) / float64(present)
		}
	}
	return means
}

// MaxCount returns the largest single category count across all buckets.
func (g ClockGroups) MaxCount() int {
	maxCount := 0
	for _, b := range g.Buckets {
		for _, c := range b.CategoryCounts {
			if c > maxCount {
				maxCount = c
			}
		}
	}
	return maxCount
}

// CountsFor returns the per-bucket counts for one category, covering only
// the buckets where the category appears. This is the value series the
// density estimate runs over.
func (g ClockGroups) CountsFor(category string) []float64 {
	var counts []float64
	for _, b := range g.Buckets {
		if c, ok := b.CategoryCounts[category]; ok {
			counts = append(counts, float64(c))
		}
	}
	return counts
}

func sortedSet(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
