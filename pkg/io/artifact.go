package io

import (
	"time"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// Artifact is the output of one build.
type Artifact struct {
	BuildID       string               `json:"buildId"`
	Source        string               `json:"source,omitempty"`
	SourceHash    string               `json:"sourceHash,omitempty"`
	People        []genealogy.Person   `json:"people"`
	Statistics    genealogy.Statistics `json:"statistics"`
	ParsedAt      time.Time            `json:"parsedAt"`
	ParseErrors   []string             `json:"parseErrors"`
	ParseWarnings []string             `json:"parseWarnings"`
	Validation    genealogy.Validation `json:"validation"`
}
