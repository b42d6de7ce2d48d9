// Package textmatch holds the small set of regexp2 helpers shared by the
// lexicon and the date parser. All offsets are rune offsets.
package textmatch

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Word boundaries that treat Greek letters and combining marks as word runes.
const (
	WordStart = `(?<![\p{L}\p{M}\p{N}_])`
	WordEnd   = `(?![\p{L}\p{M}\p{N}_])`
	// Never is a group that matches nothing.
	Never = `(?!)`
)

// Compile compiles a case-insensitive pattern.
func Compile(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	return re, nil
}

// Phrase turns a literal, possibly multi-word phrase into a pattern that
// tolerates any run of whitespace between words.
func Phrase(p string) string {
	fields := strings.Fields(p)
	for i, f := range fields {
		fields[i] = regexp2.Escape(f)
	}
	return strings.Join(fields, `\s+`)
}

// Alternation builds a non-capturing group over literal phrases, longest
// first so that a phrase never loses to one of its own prefixes. An empty
// list yields a group that never matches.
func Alternation(phrases []string) string {
	sorted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if strings.TrimSpace(p) != "" {
			sorted = append(sorted, p)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	if len(sorted) == 0 {
		return Never
	}
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = Phrase(p)
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

// Words builds a pattern matching any of the phrases as whole words.
func Words(phrases []string) string {
	return WordStart + Alternation(phrases) + WordEnd
}

// Find returns the first match in runes at or after start, or nil.
func Find(re *regexp2.Regexp, runes []rune, start int) *regexp2.Match {
	if re == nil || start > len(runes) {
		return nil
	}
	m, err := re.FindRunesMatchStartingAt(runes, start)
	if err != nil {
		return nil
	}
	return m
}

// Next returns the match following m, or nil.
func Next(re *regexp2.Regexp, m *regexp2.Match) *regexp2.Match {
	if m == nil {
		return nil
	}
	n, err := re.FindNextMatch(m)
	if err != nil {
		return nil
	}
	return n
}

// Contains reports whether re matches anywhere in s.
func Contains(re *regexp2.Regexp, s string) bool {
	if re == nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// Group returns the text captured by a named group and whether it took part
// in the match.
func Group(m *regexp2.Match, name string) (string, bool) {
	if m == nil {
		return "", false
	}
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

// ReplaceAll replaces every match of re in s with repl. On a matcher error
// s is returned unchanged.
func ReplaceAll(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}
