package gedcom

import "errors"

// Record tags (level 0).
const (
	TagIndividual = "INDI"
	TagFamily     = "FAM"
)

// Individual tags (level 1 inside an INDI record).
const (
	TagName          = "NAME"
	TagSex           = "SEX"
	TagBirth         = "BIRT"
	TagDeath         = "DEAT"
	TagOccupation    = "OCCU"
	TagNote          = "NOTE"
	TagMedia         = "OBJE"
	TagChildOfFamily = "FAMC"
	TagSpouseFamily  = "FAMS"

	TagBurial      = "BURI"
	TagChristening = "CHR"
	TagBaptism     = "BAPM"
	TagResidence   = "RESI"
)

// Family tags (level 1 inside a FAM record).
const (
	TagHusband  = "HUSB"
	TagWife     = "WIFE"
	TagChild    = "CHIL"
	TagMarriage = "MARR"
	TagDivorce  = "DIV"
)

// Sub-record tags.
const (
	TagDate        = "DATE"
	TagPlace       = "PLAC"
	TagFile        = "FILE"
	TagNamePrefix  = "NPFX"
	TagNameSuffix  = "NSFX"
	TagContinue    = "CONT"
	TagConcatenate = "CONC"
)

// extraEvents are individual events kept in Individual.Events.
var extraEvents = map[string]bool{
	TagBurial:      true,
	TagChristening: true,
	TagBaptism:     true,
	TagResidence:   true,
}

var (
	errMalformedLine = errors.New("line does not match LEVEL [@ID@] TAG [VALUE]")
	errMissingID     = errors.New("record has no identifier")
	errMissingRef    = errors.New("missing cross-reference value")
)
