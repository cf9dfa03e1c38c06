package gedcom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// nameRE matches the "Given Names /Surname/" convention. The closing slash
// is optional.
var nameRE = regexp.MustCompile(`^([^/]*)\s*/([^/]+)/?$`)

// ParseName interprets a NAME value.
//
// When the value follows the slash convention, the text before the slashes
// is the given name and the text between them is the family name. Otherwise
// the last whitespace-separated token is the family name and the rest is the
// given name; a single token is treated entirely as the family name. Full
// always holds the slash-stripped value.
func ParseName(value string) Name {
	full := strings.TrimSpace(strings.ReplaceAll(value, "/", ""))
	name := Name{Full: full}

	if m := nameRE.FindStringSubmatch(value); m != nil {
		name.Given = strings.TrimSpace(m[1])
		name.Family = strings.TrimSpace(m[2])
		return name
	}

	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
	case 1:
		name.Family = parts[0]
	default:
		name.Family = parts[len(parts)-1]
		name.Given = strings.Join(parts[:len(parts)-1], " ")
	}
	return name
}

// estimateMarkers are the approximation prefixes recognized on DATE values.
var estimateMarkers = []string{"ABT", "EST"}

var monthAbbrevs = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

var (
	yearRE = regexp.MustCompile(`^\d{4}$`)
	dayRE  = regexp.MustCompile(`^\d{1,2}$`)
)

// ParseDate interprets a DATE value such as "10 MAY 1760", "JAN 1950",
// "1950" or "ABT 1950".
//
// A 1-2 digit token is read as the day only when the value also names a
// month, so "15 1850" yields a year and no day. This is a heuristic for the
// "day month year" and "month year" orderings, not full format detection.
func ParseDate(value string) Date {
	d := Date{Raw: value}
	rest := strings.TrimSpace(value)

	for _, marker := range estimateMarkers {
		if strings.HasPrefix(rest, marker) {
			d.Estimated = true
			rest = strings.TrimSpace(strings.TrimPrefix(rest, marker))
			break
		}
	}

	tokens := strings.Fields(rest)
	for _, tok := range tokens {
		if m := monthOf(tok); m > 0 {
			d.Month = m
		}
	}
	for _, tok := range tokens {
		switch {
		case yearRE.MatchString(tok):
			d.Year, _ = strconv.Atoi(tok)
		case dayRE.MatchString(tok) && d.Month > 0:
			d.Day, _ = strconv.Atoi(tok)
		}
	}
	return d
}

// monthOf returns 1-12 when tok starts with a month abbreviation
// (case-insensitive), or 0.
func monthOf(tok string) int {
	upper := strings.ToUpper(tok)
	for i, abbrev := range monthAbbrevs {
		if strings.HasPrefix(upper, abbrev) {
			return i + 1
		}
	}
	return 0
}

// ParsePlace interprets a PLAC value as comma-separated parts, most specific
// first.
func ParsePlace(value string) Place {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	p := Place{Raw: value, Parts: parts}
	if len(parts) > 0 {
		p.City = parts[0]
	}
	if len(parts) > 1 {
		p.Region = parts[1]
	}
	if len(parts) > 2 {
		p.Country = parts[2]
	}
	return p
}

// DateToISO formats d as YYYY-MM-DD, defaulting a missing month or day to 01.
// It returns "" when d is nil or has no year.
func DateToISO(d *Date) string {
	if d == nil || d.Year == 0 {
		return ""
	}
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return fmt.Sprintf("%d-%02d-%02d", d.Year, month, day)
}

// FormatPlace joins the place parts for display. It returns "" for nil.
func FormatPlace(p *Place) string {
	if p == nil {
		return ""
	}
	return strings.Join(p.Parts, ", ")
}
