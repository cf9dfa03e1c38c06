package gedcom

import (
	"regexp"
	"strconv"
	"strings"
)

// lineRE matches "LEVEL [@XREF@] TAG [VALUE]".
var lineRE = regexp.MustCompile(`^(\d+)\s+(?:@([^@]+)@\s+)?(\w+)(?:\s+(.*))?$`)

// Line is one tokenized GEDCOM line.
//
// Lines that do not match the structural pattern are still returned with
// Valid set to false so event lookahead can stop on them; the assembler
// skips them.
type Line struct {
	Number int    // 1-based line number in the source text
	Level  int    // nesting depth; 0 starts a record
	XRef   string // bracketed identifier without the @ markers, if present
	Tag    string
	Value  string
	Raw    string // trimmed source line
	Valid  bool
	err    error
}

// Err reports why a line failed to tokenize, or nil for valid lines.
func (l Line) Err() error { return l.err }

// Tokenize splits text into trimmed, non-empty lines and decomposes each into
// level, optional cross-reference, tag and value. Both "\n" and "\r\n" line
// endings are accepted.
func Tokenize(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		lines = append(lines, tokenizeLine(i+1, s))
	}
	return lines
}

func tokenizeLine(number int, s string) Line {
	l := Line{Number: number, Raw: s}
	m := lineRE.FindStringSubmatch(s)
	if m == nil {
		l.err = errMalformedLine
		return l
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		l.err = err
		return l
	}
	l.Level = level
	l.XRef = m[2]
	l.Tag = m[3]
	l.Value = strings.TrimSpace(m[4])
	l.Valid = true
	return l
}

// stripRef removes "@" markers and spaces from a cross-reference value,
// turning "@I1@" into "I1".
func stripRef(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '@' || r == ' ' {
			return -1
		}
		return r
	}, s)
}
