package model

import (
	"errors"
	"time"
)

// ErrInvalidDate reports a timestamp whose fields passed lexical parsing but
// do not name a real calendar date (for example February 31st).
var ErrInvalidDate = errors.New("model: invalid calendar date")

// Timestamp is a structured date/time as extracted from one of the accepted
// log grammars. Year, Month, and Day are always populated; Hour, Minute, and
// Second default to 0 when the source string omitted them, which means
// "unknown sub-day time" rather than midnight.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Time converts the timestamp into a single chronological instant for
// sorting and grouping. The grammar layer is purely lexical, so calendar
// validity is checked here: a day that does not exist in its month comes
// back as ErrInvalidDate.
func (ts Timestamp) Time() (time.Time, error) {
	t := time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, ts.Second, 0, time.Local)
	if t.Year() != ts.Year || t.Month() != time.Month(ts.Month) || t.Day() != ts.Day {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// LogRecord is one normalized activity entry. It is the canonical type shared
// by both readers and consumed by the aggregation and chart layers.
// Records are immutable once created.
type LogRecord struct {
	Timestamp   time.Time
	RepeatCount int
	Category    string
}

// RecordSet is an ordered sequence of records in input order, which is not
// necessarily chronological. No deduplication is performed.
type RecordSet []LogRecord
