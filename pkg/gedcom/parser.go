package gedcom

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Options configures a Parser.
type Options struct {
	// Lookahead is the number of lines scanned after an event tag for its
	// DATE and PLAC sub-records. Zero means DefaultLookahead.
	Lookahead int

	// Logger receives debug messages about skipped input. Optional.
	Logger func(msg string, args ...any)
}

// Parser assembles GEDCOM lines into individual and family records.
// A Parser holds no per-parse state and may be reused.
type Parser struct {
	opts Options
}

// NewParser returns a Parser configured by opts.
func NewParser(opts Options) *Parser {
	if opts.Lookahead <= 0 {
		opts.Lookahead = DefaultLookahead
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return &Parser{opts: opts}
}

// Parse parses text with default options.
func Parse(text string) *Result {
	return NewParser(Options{}).Parse(text)
}

type stateKind int

const (
	stateNone stateKind = iota
	stateIndividual
	stateFamily
)

// state is the assembler's current record. Exactly one of ind and fam is set
// when kind is not stateNone.
type state struct {
	kind stateKind
	ind  *Individual
	fam  *Family
}

// Parse walks the tokenized text once. Every level-0 line finalizes the
// record in progress; the last record is finalized at end of input. A line
// whose handler fails is recorded in Result.Errors and never aborts the parse.
func (p *Parser) Parse(text string) *Result {
	lines := Tokenize(text)
	res := &Result{
		Individuals: make(map[string]*Individual),
		Families:    make(map[string]*Family),
		TotalLines:  len(lines),
	}

	var st state
	for i := range lines {
		st = p.apply(st, lines, i, res)
	}
	res.flush(st)
	res.ParsedAt = time.Now().UTC()

	p.opts.Logger("parsed %d lines: %d individuals, %d families, %d errors",
		len(lines), len(res.Individuals), len(res.Families), len(res.Errors))
	return res
}

// apply processes lines[i] and returns the next state. Panics raised by a
// handler are converted into line errors.
func (p *Parser) apply(st state, lines []Line, i int, res *Result) (next state) {
	l := lines[i]
	if !l.Valid {
		if errors.Is(l.err, errMalformedLine) {
			res.warnf(l.Number, "skipped %q", l.Raw)
			p.opts.Logger("line %d skipped: %s", l.Number, l.Raw)
		} else {
			res.errorf(l.Number, "%v", l.err)
		}
		return st
	}

	defer func() {
		if r := recover(); r != nil {
			res.errorf(l.Number, "%v", r)
			next = st
		}
	}()

	next, err := p.handle(st, lines, i, res)
	if err != nil {
		res.errorf(l.Number, "%s: %v", l.Tag, err)
	}
	return next
}

func (p *Parser) handle(st state, lines []Line, i int, res *Result) (state, error) {
	l := lines[i]
	if l.Level == 0 {
		res.flush(st)
		switch l.Tag {
		case TagIndividual:
			id := recordID(l)
			if id == "" {
				return state{}, errMissingID
			}
			return state{kind: stateIndividual, ind: &Individual{ID: id}}, nil
		case TagFamily:
			id := recordID(l)
			if id == "" {
				return state{}, errMissingID
			}
			return state{kind: stateFamily, fam: &Family{ID: id, Children: []string{}}}, nil
		default:
			return state{}, nil
		}
	}
	if l.Level != 1 {
		return st, nil
	}

	switch st.kind {
	case stateIndividual:
		return st, p.individualField(st.ind, lines, i)
	case stateFamily:
		return st, p.familyField(st.fam, lines, i)
	}
	return st, nil
}

// recordID prefers the bracketed token and falls back to the value.
func recordID(l Line) string {
	if l.XRef != "" {
		return stripRef(l.XRef)
	}
	return stripRef(l.Value)
}

func (p *Parser) individualField(ind *Individual, lines []Line, i int) error {
	l := lines[i]
	switch l.Tag {
	case TagName:
		ind.Name = ParseName(l.Value)
		sub := scanSubValues(lines, i, p.opts.Lookahead)
		ind.Name.Prefix = sub[TagNamePrefix]
		ind.Name.Suffix = sub[TagNameSuffix]
	case TagSex:
		ind.Sex = l.Value
	case TagBirth:
		ev := scanEvent(lines, i, p.opts.Lookahead)
		if ev.Date != nil {
			ind.BirthDate = ev.Date
		}
		if ev.Place != nil {
			ind.BirthPlace = ev.Place
		}
	case TagDeath:
		ev := scanEvent(lines, i, p.opts.Lookahead)
		if ev.Date != nil {
			ind.DeathDate = ev.Date
		}
		if ev.Place != nil {
			ind.DeathPlace = ev.Place
		}
	case TagOccupation:
		ind.Occupation = l.Value
	case TagNote:
		ind.Note = noteText(lines, i)
	case TagMedia:
		if ind.PhotoURL != "" {
			return nil
		}
		url := l.Value
		if url == "" {
			url = scanSubValues(lines, i, p.opts.Lookahead)[TagFile]
		}
		if strings.HasPrefix(url, "http") {
			ind.PhotoURL = url
		}
	case TagChildOfFamily:
		ref := stripRef(l.Value)
		if ref == "" {
			return errMissingRef
		}
		ind.FamC = append(ind.FamC, ref)
	case TagSpouseFamily:
		ref := stripRef(l.Value)
		if ref == "" {
			return errMissingRef
		}
		ind.FamS = append(ind.FamS, ref)
	default:
		if extraEvents[l.Tag] {
			ind.Events = append(ind.Events, scanEvent(lines, i, p.opts.Lookahead))
		}
	}
	return nil
}

func (p *Parser) familyField(fam *Family, lines []Line, i int) error {
	l := lines[i]
	switch l.Tag {
	case TagHusband, TagWife, TagChild:
		ref := stripRef(l.Value)
		if ref == "" {
			return errMissingRef
		}
		switch l.Tag {
		case TagHusband:
			fam.Husband = ref
		case TagWife:
			fam.Wife = ref
		default:
			fam.Children = append(fam.Children, ref)
		}
	case TagMarriage:
		if ev := scanEvent(lines, i, p.opts.Lookahead); ev.Date != nil {
			fam.MarriageDate = ev.Date
		}
	case TagDivorce:
		if ev := scanEvent(lines, i, p.opts.Lookahead); ev.Date != nil {
			fam.DivorceDate = ev.Date
		}
	}
	return nil
}

// noteText joins a NOTE value with its CONT (new line) and CONC (same line)
// continuation records.
func noteText(lines []Line, at int) string {
	var b strings.Builder
	b.WriteString(lines[at].Value)
	base := lines[at].Level
	for i := at + 1; i < len(lines); i++ {
		l := lines[i]
		if !l.Valid || l.Level <= base {
			break
		}
		if l.Level != base+1 {
			continue
		}
		switch l.Tag {
		case TagContinue:
			b.WriteByte('\n')
			b.WriteString(l.Value)
		case TagConcatenate:
			b.WriteString(l.Value)
		}
	}
	return b.String()
}

// flush stores the record held by st.
func (r *Result) flush(st state) {
	switch st.kind {
	case stateIndividual:
		if _, dup := r.Individuals[st.ind.ID]; dup {
			r.Warnings = append(r.Warnings, fmt.Sprintf("duplicate individual %s: later record replaces earlier", st.ind.ID))
		} else {
			r.IndividualOrder = append(r.IndividualOrder, st.ind.ID)
		}
		r.Individuals[st.ind.ID] = st.ind
	case stateFamily:
		if _, dup := r.Families[st.fam.ID]; dup {
			r.Warnings = append(r.Warnings, fmt.Sprintf("duplicate family %s: later record replaces earlier", st.fam.ID))
		} else {
			r.FamilyOrder = append(r.FamilyOrder, st.fam.ID)
		}
		r.Families[st.fam.ID] = st.fam
	}
}

func (r *Result) errorf(line int, format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf("Line %d: %s", line, fmt.Sprintf(format, args...)))
}

func (r *Result) warnf(line int, format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf("Line %d: %s", line, fmt.Sprintf(format, args...)))
}
