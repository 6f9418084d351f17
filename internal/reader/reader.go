// Package reader loads activity files into normalized record sets. Two input
// shapes are supported: the custom one-record-per-line text log, and the
// semicolon-delimited wHealth export.
package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BaksiLi/sex-stats/internal/logparse"
	"github.com/BaksiLi/sex-stats/internal/model"
)

// ErrMalformedInput reports a file that cannot be opened or decoded at all.
// Individual unparseable lines in the custom log format are not malformed
// input; they are silently dropped.
var ErrMalformedInput = errors.New("reader: input cannot be decoded")

// ReadFile loads path into a record set, choosing the reader by file
// extension: .csv routes to the wHealth export reader, anything else to the
// custom log reader with the given header prefix.
func ReadFile(path string, headerLines int) (model.RecordSet, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadHealthExport(path)
	}
	return ReadActivityLog(path, headerLines)
}

// ReadActivityLog reads a custom-format activity log. The first headerLines
// lines are discarded, every remaining line runs through the line parser, and
// lines that fail to parse produce no record rather than an error. Tolerance
// for noisy hand-written logs is deliberate.
func ReadActivityLog(path string, headerLines int) (model.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	lp := logparse.NewLineParser()
	records := model.RecordSet{}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		if record, ok := lp.Parse(scanner.Text()); ok {
			records = append(records, record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return records, nil
}

// healthColumnMapping is the explicit schema map for the wHealth export:
// source column to normalized field. Columns mapped to "" are dropped.
var healthColumnMapping = []struct {
	source string
	target string
}{
	{"startdate", "Timestamp"},
	{"value", "RepeatCount"},
	{"unit", ""},
	{"name", ""},
	{"source", ""},
}

// healthTimeLayouts are the accepted startdate layouts, tried in order.
var healthTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ReadHealthExport reads a semicolon-delimited wHealth export. The export
// carries no category, so every record gets the fixed "Unknown" sentinel.
// Row order is preserved and no row is skipped: the tabular format has no
// line-level fallback, so any row that cannot be decoded makes the whole
// file malformed.
func ReadHealthExport(path string) (model.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty export", ErrMalformedInput)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, mapping := range healthColumnMapping {
		if mapping.target == "" {
			continue // dropped column, presence not required
		}
		if _, ok := columns[mapping.source]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, mapping.source)
		}
	}

	startIdx := columns["startdate"]
	valueIdx := columns["value"]

	records := make(model.RecordSet, 0, len(rows)-1)
	for _, row := range rows[1:] {
		instant, err := parseHealthTime(row[startIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: bad startdate %q", ErrMalformedInput, row[startIdx])
		}
		count, err := parseHealthValue(row[valueIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: bad value %q", ErrMalformedInput, row[valueIdx])
		}
		records = append(records, model.LogRecord{
			Timestamp:   instant,
			RepeatCount: count,
			Category:    model.UnknownCategory,
		})
	}

	return records, nil
}

func parseHealthTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range healthTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}

func parseHealthValue(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
