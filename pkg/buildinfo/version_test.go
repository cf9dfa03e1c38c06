package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "v1.2.3", "abc123"
	got := Get()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != Date {
		t.Errorf("Get() = %+v", got)
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} v1.2.3 (commit abc123") {
		t.Errorf("Template() = %q", tmpl)
	}
}
