package gedcom

// DefaultLookahead is the number of lines examined after an event tag when
// collecting its DATE and PLAC sub-records.
const DefaultLookahead = 9

// scanEvent collects the DATE and PLAC sub-records of the event at lines[at].
//
// Scanning covers at most window following lines and stops at the first
// invalid line or the first line whose level is not deeper than the event's,
// since that line closes the event. Only direct children (level+1) count,
// and the first DATE and the first PLAC win.
func scanEvent(lines []Line, at, window int) Event {
	ev := Event{Type: lines[at].Tag}
	base := lines[at].Level

	for i := at + 1; i < len(lines) && i <= at+window; i++ {
		l := lines[i]
		if !l.Valid || l.Level <= base {
			break
		}
		if l.Level != base+1 || l.Value == "" {
			continue
		}
		switch l.Tag {
		case TagDate:
			if ev.Date == nil {
				d := ParseDate(l.Value)
				ev.Date = &d
			}
		case TagPlace:
			if ev.Place == nil {
				p := ParsePlace(l.Value)
				ev.Place = &p
			}
		}
	}
	return ev
}

// scanSubValues returns the values of the direct children of lines[at],
// keyed by tag. The first occurrence of each tag wins.
func scanSubValues(lines []Line, at, window int) map[string]string {
	values := make(map[string]string)
	base := lines[at].Level
	for i := at + 1; i < len(lines) && i <= at+window; i++ {
		l := lines[i]
		if !l.Valid || l.Level <= base {
			break
		}
		if l.Level != base+1 {
			continue
		}
		if _, seen := values[l.Tag]; !seen {
			values[l.Tag] = l.Value
		}
	}
	return values
}
