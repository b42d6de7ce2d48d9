package lexicon_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskparse/internal/lexicon"
	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

func TestDefault(t *testing.T) {
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if lex.DefaultTitle != "New Task" {
		t.Errorf("DefaultTitle = %q, want %q", lex.DefaultTitle, "New Task")
	}

	wantLevels := []model.Priority{model.PriorityUrgent, model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	if len(lex.Priorities) != len(wantLevels) {
		t.Fatalf("len(Priorities) = %d, want %d", len(lex.Priorities), len(wantLevels))
	}
	for i, want := range wantLevels {
		if lex.Priorities[i].Level != want {
			t.Errorf("Priorities[%d] = %q, want %q", i, lex.Priorities[i].Level, want)
		}
	}

	for _, m := range model.SymbolMarkers {
		sp, ok := lex.Symbols[m]
		if !ok || sp.Name == nil || sp.Word == nil {
			t.Errorf("missing patterns for marker %q", m)
		}
	}

	if got := len(lex.Vocabulary.Weekdays); got != 7 {
		t.Errorf("weekdays = %d, want 7", got)
	}
	if got := lex.Vocabulary.Weekdays[time.Friday]; len(got) == 0 || got[0] != "friday" {
		t.Errorf("friday spellings = %v", got)
	}

	again := lexicon.MustDefault()
	if again != lex {
		t.Errorf("Default() should return the shared instance")
	}
}

func TestPatterns(t *testing.T) {
	lex := lexicon.MustDefault()

	tests := []struct {
		name  string
		check func() bool
		want  bool
	}{
		{"field name title", func() bool { return textmatch.Contains(lex.FieldName, "update title to x") }, true},
		{"field name inside word", func() bool { return textmatch.Contains(lex.FieldName, "entitled") }, false},
		{"greek creation stem", func() bool { return textmatch.Contains(lex.GreekCreation, "φτιάξε κάτι") }, true},
		{"greek κάνε is not κανένα", func() bool { return textmatch.Contains(lex.GreekCreation, "κανένα") }, false},
		{"task word greek", func() bool { return textmatch.Contains(lex.TaskWord, "νέα εργασία") }, true},
		{"action verb", func() bool { return textmatch.Contains(lex.ActionVerb, "please schedule it") }, true},
		{"priority phrase", func() bool { return textmatch.Contains(lex.PriorityPhrase, "σημαντικότατο") }, true},
		{"time token", func() bool { return textmatch.Contains(lex.TimeToken, "3pm") }, true},
		{"time token word", func() bool { return textmatch.Contains(lex.TimeToken, "pump") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsReserved(t *testing.T) {
	lex := lexicon.MustDefault()

	for _, w := range []string{"Task", "tomorrow", "ΕΡΓΑΣΊΑ", "friday", "urgent", "βράδυ", "hello", "hours", "λεπτά", "days", "εβδομάδες", "δέκα", "twelve", "εργασια", "ΔΗΜΙΟΥΡΓΗΣΕ"} {
		if !lex.IsReserved(w) {
			t.Errorf("IsReserved(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"pump", "Garden", "Πότισμα"} {
		if lex.IsReserved(w) {
			t.Errorf("IsReserved(%q) = true, want false", w)
		}
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ΤΊΤΛΟΣ", "τίτλος"},
		{"Create A Task", "create a task"},
		{"ΟΔΟΣ ΣΤΑΔΙΟΥ", "οδος σταδιου"},
	}
	for _, tt := range tests {
		if got := lexicon.Lower(tt.in); got != tt.want {
			t.Errorf("Lower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "Malformed YAML",
			doc:     "default_title: [",
			wantErr: lexicon.ErrInvalidLexicon,
		},
		{
			name:    "Missing default title",
			doc:     "entities:\n  stop_prepositions: [for]\n",
			wantErr: lexicon.ErrInvalidLexicon,
		},
		{
			name:    "Unknown priority",
			doc:     "default_title: T\nentities:\n  stop_prepositions: [for]\npriority:\n  - level: extreme\n    phrases: [now]\n",
			wantErr: lexicon.ErrUnknownPriority,
		},
		{
			name:    "Unknown weekday",
			doc:     "default_title: T\nentities:\n  stop_prepositions: [for]\ndates:\n  weekdays:\n    caturday: [caturday]\n",
			wantErr: lexicon.ErrUnknownWeekday,
		},
		{
			name:    "Bad pattern",
			doc:     "default_title: T\nentities:\n  stop_prepositions: [for]\nintent:\n  create_patterns: ['(unclosed']\n",
			wantErr: lexicon.ErrInvalidLexicon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexicon.Parse([]byte(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	doc := `
default_title: Untitled
entities:
  stop_prepositions: [for]
priority:
  - level: high
    phrases: [important]
title:
  stop_words: [do]
`
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	lex, err := lexicon.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lex.DefaultTitle != "Untitled" {
		t.Errorf("DefaultTitle = %q", lex.DefaultTitle)
	}
	if textmatch.Contains(lex.FieldName, "title") {
		t.Errorf("empty field name list should match nothing")
	}

	if _, err := lexicon.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	def, err := lexicon.Load("")
	if err != nil || def != lexicon.MustDefault() {
		t.Errorf("Load(\"\") should return the default lexicon, err = %v", err)
	}
}
