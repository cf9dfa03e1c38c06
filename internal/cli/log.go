// Package cli implements the gedgraph command-line interface.
//
// The commands build GEDCOM sources into JSON artifacts, report data
// problems, answer relationship queries, render Graphviz diagrams and serve
// the graph over HTTP. The CLI is built using cobra and logs with
// charmbracelet/log.
//
// # Commands
//
//   - build: parse a GEDCOM file and write the JSON artifact
//   - validate: report line errors, dangling references and pedigree cycles
//   - query: look up people, ancestors, descendants and distances
//   - render: draw the family graph as SVG or DOT
//   - serve: serve the graph over HTTP
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// shows pipeline and cache events.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Built 42 people (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnParseStart(_ context.Context, source string) {
	h.logger.Debug("parse started", "source", source)
}

func (h *logHooks) OnParseComplete(_ context.Context, source string, people, lineErrors int, d time.Duration, err error) {
	h.logger.Debug("parse finished", "source", source, "people", people, "line_errors", lineErrors, "duration", d, "error", err)
}

func (h *logHooks) OnValidate(_ context.Context, source string, valid bool, issues int) {
	h.logger.Debug("validated", "source", source, "valid", valid, "issues", issues)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, people int) {
	h.logger.Debug("render started", "format", format, "people", people)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	h.logger.Debug("render finished", "format", format, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
