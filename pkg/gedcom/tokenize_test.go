package gedcom

import "testing"

func TestTokenize(t *testing.T) {
	text := "0 HEAD\r\n\n  0 @I1@ INDI  \n1 NAME Pierre /Delpech/\n2 DATE\nnot a gedcom line\n1 FAMS @F1@\n"
	lines := Tokenize(text)

	if len(lines) != 6 {
		t.Fatalf("len(lines) = %d, want 6", len(lines))
	}

	tests := []struct {
		idx    int
		number int
		level  int
		xref   string
		tag    string
		value  string
		valid  bool
	}{
		{0, 1, 0, "", "HEAD", "", true},
		{1, 3, 0, "I1", "INDI", "", true},
		{2, 4, 1, "", "NAME", "Pierre /Delpech/", true},
		{3, 5, 2, "", "DATE", "", true},
		{4, 6, 0, "", "", "", false},
		{5, 7, 1, "", "FAMS", "@F1@", true},
	}
	for _, tt := range tests {
		l := lines[tt.idx]
		if l.Number != tt.number {
			t.Errorf("line %d: Number = %d, want %d", tt.idx, l.Number, tt.number)
		}
		if l.Valid != tt.valid {
			t.Errorf("line %d: Valid = %v, want %v", tt.idx, l.Valid, tt.valid)
			continue
		}
		if !l.Valid {
			if l.Err() == nil {
				t.Errorf("line %d: invalid line should carry an error", tt.idx)
			}
			continue
		}
		if l.Level != tt.level || l.XRef != tt.xref || l.Tag != tt.tag || l.Value != tt.value {
			t.Errorf("line %d: got (%d, %q, %q, %q), want (%d, %q, %q, %q)",
				tt.idx, l.Level, l.XRef, l.Tag, l.Value, tt.level, tt.xref, tt.tag, tt.value)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if lines := Tokenize("\n\n   \n"); len(lines) != 0 {
		t.Errorf("Tokenize(blank) returned %d lines, want 0", len(lines))
	}
}

func TestStripRef(t *testing.T) {
	tests := map[string]string{
		"@I1@":   "I1",
		"@ F2 @": "F2",
		"I3":     "I3",
		"":       "",
	}
	for in, want := range tests {
		if got := stripRef(in); got != want {
			t.Errorf("stripRef(%q) = %q, want %q", in, got, want)
		}
	}
}
