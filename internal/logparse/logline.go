// Package logparse turns free-text activity log lines into normalized
// records.
package logparse

import (
	"regexp"
	"strconv"

	"github.com/BaksiLi/sex-stats/internal/model"
	"github.com/BaksiLi/sex-stats/internal/timestamp"
)

// repeatKindRegex matches the repeat-count and category phrase anywhere after
// the start of the line: `<repeat> time(s) <category>`, where the category is
// one or more word characters optionally followed by a single parenthesized
// word-character qualifier. The qualifier is captured verbatim as part of the
// category label.
var repeatKindRegex = regexp.MustCompile(`^.+ (?P<Repeat>\d+) times? (?P<Kind>\w+( \(\w+\))?)`)

// LineParser extracts one LogRecord per custom-format log line.
type LineParser struct {
	ts *timestamp.Parser
}

// NewLineParser creates a line parser backed by the standard timestamp
// grammars.
func NewLineParser() *LineParser {
	return &LineParser{ts: timestamp.NewParser()}
}

// Parse parses a single line. The second return value is false when the line
// carries no leading timestamp, no repeat/category suffix, or an impossible
// calendar date; callers treat that as "skip line", never as an error.
func (lp *LineParser) Parse(line string) (model.LogRecord, bool) {
	ts, err := lp.ts.Parse(line)
	if err != nil {
		return model.LogRecord{}, false
	}

	instant, err := ts.Time()
	if err != nil {
		return model.LogRecord{}, false
	}

	m := repeatKindRegex.FindStringSubmatch(line)
	if m == nil {
		return model.LogRecord{}, false
	}

	record := model.LogRecord{
		Timestamp:   instant,
		RepeatCount: model.DefaultRepeatCount,
	}
	for i, name := range repeatKindRegex.SubexpNames() {
		switch name {
		case "Repeat":
			if n, err := strconv.Atoi(m[i]); err == nil {
				record.RepeatCount = n
			}
		case "Kind":
			record.Category = m[i]
		}
	}
	return record, true
}
