package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// Parser resolves relative day phrases ("tomorrow", "in 3 days", "next friday")
// to the start of the target day.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves phrase relative to base. Unknown phrases return an error.
func (p *Parser) Parse(phrase string, base time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	today := StartOfDay(base.In(p.location))

	switch phrase {
	case "today", "tonight":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := inDurationRe.FindStringSubmatch(phrase); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "day", "days":
			return today.AddDate(0, 0, n), nil
		case "week", "weeks":
			return today.AddDate(0, 0, 7*n), nil
		default:
			return today.AddDate(0, n, 0), nil
		}
	}

	name := strings.TrimPrefix(phrase, "next ")
	if wd, ok := weekdays[name]; ok {
		return nextWeekday(today, wd), nil
	}

	return time.Time{}, fmt.Errorf("unrecognised date phrase: %q", phrase)
}

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date, the
// latter read as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseAny tries ParseDate in the parser's location, then a relative phrase.
func (p *Parser) ParseAny(s string, base time.Time) (time.Time, error) {
	if t, err := ParseDate(s, p.location); err == nil {
		return t, nil
	}
	return p.Parse(s, base)
}

// nextWeekday returns the first day strictly after today that falls on wd.
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	days := int(wd - today.Weekday())
	if days <= 0 {
		days += 7
	}
	return today.AddDate(0, 0, days)
}
