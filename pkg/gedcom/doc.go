// Package gedcom parses the subset of GEDCOM needed to describe a family graph.
//
// # Overview
//
// GEDCOM is a line-oriented format where every line carries a nesting level,
// an optional cross-reference identifier, a tag and an optional value:
//
//	0 @I1@ INDI
//	1 NAME Pierre /Delpech/
//	1 BIRT
//	2 DATE 10 MAY 1760
//	2 PLAC Provence, France
//	1 FAMS @F1@
//
// Parsing happens in three stages:
//
//   - [Tokenize] splits text into [Line] values (level, xref, tag, value).
//   - Field interpreters ([ParseName], [ParseDate], [ParsePlace]) turn values
//     into structured data. Events (BIRT, DEAT, MARR, DIV...) collect their
//     DATE and PLAC children with a bounded lookahead.
//   - [Parser.Parse] folds over the lines with an explicit state (no record,
//     building an individual, building a family), finalizing a record whenever
//     a level-0 line starts the next one and at end of input.
//
// # Recognized Tags
//
// Individuals: NAME (with NPFX/NSFX), SEX, BIRT, DEAT, OCCU, NOTE (with
// CONT/CONC), OBJE, FAMC, FAMS, and the extra events BURI, CHR, BAPM, RESI.
// Families: HUSB, WIFE, CHIL, MARR, DIV. Every other tag is ignored.
//
// # Errors
//
// Parsing never fails as a whole. A malformed line is skipped and reported in
// [Result.Warnings]; a line whose handler fails is reported in
// [Result.Errors] as "Line <n>: <message>" and parsing continues.
//
// Converting the raw records into a person graph is the job of package
// genealogy.
package gedcom
