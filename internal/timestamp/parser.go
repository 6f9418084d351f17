// Package timestamp parses raw date/time strings against the small closed
// set of grammars an activity log may use.
package timestamp

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/BaksiLi/sex-stats/internal/model"
)

// Field tokens shared by both grammars. Extraction is purely lexical: "31"
// is accepted as a day even in February, and calendar validity stays with
// the caller (model.Timestamp.Time).
const (
	yearToken  = `(?P<Year>(19|2\d)?\d{2})`
	monthToken = `(?P<Month>1[0-2]|0\d)`
	dayToken   = `(?P<Day>[123]\d|0\d)`
	timeToken  = `(?P<Hour>[01]?\d|2[0-3]):(?P<Minute>[0-5]\d)(:(?P<Second>[0-5]\d))?`
)

// twoDigitYearPivot splits two-digit years between centuries: years at or
// above the pivot belong to the 1900s, the rest to the 2000s.
const twoDigitYearPivot = 70

// ErrUnparseable reports a string that matches neither grammar.
var ErrUnparseable = errors.New("timestamp: no known grammar matched")

type grammar struct {
	name string
	re   *regexp.Regexp
}

// Parser matches raw strings against the accepted timestamp grammars.
// Grammars are tried in a fixed order and the first structural match wins:
//
//  1. dashed:  YYYY-MM-DD*HH:MM[:SS]
//  2. slashed: DD/MM/YYYY HH:MM[:SS]
//
// The two grammars cannot match the same prefix (one opens with a year and
// a dash, the other with a day and a slash), so the order carries no weight
// today; it is fixed anyway so that a future overlapping grammar has a
// defined precedence.
type Parser struct {
	grammars []grammar
}

// NewParser creates a parser with the two recognized grammars.
func NewParser() *Parser {
	return &Parser{
		grammars: []grammar{
			{name: "dashed", re: regexp.MustCompile(`^` + yearToken + `-` + monthToken + `-` + dayToken + `\*` + timeToken)},
			{name: "slashed", re: regexp.MustCompile(`^` + dayToken + `/` + monthToken + `/` + yearToken + ` ` + timeToken)},
		},
	}
}

// Parse attempts each grammar in order against the start of raw and returns
// the first match as a structured timestamp. Hour and Minute are required by
// both grammars; Second defaults to 0 when omitted. Returns ErrUnparseable
// when no grammar matches.
func (p *Parser) Parse(raw string) (model.Timestamp, error) {
	for _, g := range p.grammars {
		m := g.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}

		fields := make(map[string]int)
		for i, name := range g.re.SubexpNames() {
			if name == "" || m[i] == "" {
				continue
			}
			// Tokens are all-digit by construction.
			n, err := strconv.Atoi(m[i])
			if err != nil {
				return model.Timestamp{}, ErrUnparseable
			}
			fields[name] = n
		}

		return model.Timestamp{
			Year:   normalizeYear(fields["Year"]),
			Month:  fields["Month"],
			Day:    fields["Day"],
			Hour:   fields["Hour"],
			Minute: fields["Minute"],
			Second: fields["Second"],
		}, nil
	}
	return model.Timestamp{}, ErrUnparseable
}

// normalizeYear maps two-digit years onto a full calendar year using the
// fixed pivot. Four-digit years pass through unchanged.
func normalizeYear(year int) int {
	if year >= 100 {
		return year
	}
	if year >= twoDigitYearPivot {
		return 1900 + year
	}
	return 2000 + year
}
