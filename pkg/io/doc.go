// Package io reads and writes the JSON artifact produced by a build.
//
// # Format
//
// An artifact is one JSON object:
//
//	{
//	  "buildId": "7d0c...",
//	  "source": "family.ged",
//	  "sourceHash": "e3b0...",
//	  "people": [{"id": "I1", "givenName": "Pierre", ...}],
//	  "statistics": {"totalPeople": 5, "maleCount": 2, ...},
//	  "parsedAt": "2024-05-01T10:00:00Z",
//	  "parseErrors": ["Line 12: FAMS: missing cross-reference value"],
//	  "parseWarnings": [],
//	  "validation": {"valid": true, "errors": []}
//	}
//
// The person fields are those of genealogy.Person. [ReadJSON] also accepts
// a bare JSON array of people, the format of older exports, and fills in
// the statistics and validation for it.
//
// # Import and Export
//
// Use [ImportJSON] / [ExportJSON] for files and [ReadJSON] / [WriteJSON]
// for any reader or writer:
//
//	a, err := io.ImportJSON("genealogy-data.json")
//	err = io.ExportJSON(a, "out.json")
//
// Imports reject people without an ID and repeated IDs, since every
// relationship query depends on IDs being unique.
package io
