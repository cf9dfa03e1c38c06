package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

var (
	// ErrMissingID is returned when an imported person has no ID.
	ErrMissingID = errors.New("person has no id")

	// ErrDuplicateID is returned when two imported people share an ID.
	ErrDuplicateID = errors.New("duplicate person id")
)

// ReadJSON decodes an artifact from r.
//
// The input is either an artifact object or a bare array of people. For a
// bare array, the statistics and validation are computed from the people
// and the remaining fields are left empty. Errors identify the offending
// person by position. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Artifact, error) {
	br := bufio.NewReader(r)
	first, err := firstNonSpace(br)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var a Artifact
	if first == '[' {
		if err := json.NewDecoder(br).Decode(&a.People); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		a.Statistics = genealogy.ComputeStatistics(a.People)
		a.Validation = genealogy.Validate(a.People)
	} else if err := json.NewDecoder(br).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if a.People == nil {
		a.People = []genealogy.Person{}
	}
	seen := make(map[string]bool, len(a.People))
	for i, p := range a.People {
		if p.ID == "" {
			return nil, fmt.Errorf("person %d: %w", i, ErrMissingID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("person %d (%s): %w", i, p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}
	return &a, nil
}

// firstNonSpace peeks at the first non-whitespace byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// ImportJSON reads the artifact file at path.
func ImportJSON(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
