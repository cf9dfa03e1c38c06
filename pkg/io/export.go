package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// WriteJSON encodes a as indented JSON and writes it to w. Nil lists are
// written as empty arrays.
func WriteJSON(a *Artifact, w io.Writer) error {
	out := *a
	if out.People == nil {
		out.People = []genealogy.Person{}
	}
	if out.ParseErrors == nil {
		out.ParseErrors = []string{}
	}
	if out.ParseWarnings == nil {
		out.ParseWarnings = []string{}
	}
	if out.Validation.Errors == nil {
		out.Validation.Errors = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a to a JSON file at path.
func ExportJSON(a *Artifact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(a, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
