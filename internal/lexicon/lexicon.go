// Package lexicon loads the bilingual pattern library and compiles it into
// the regular expressions used by the extraction pipeline.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"taskparse/internal/model"
	"taskparse/pkg/datemath"
	"taskparse/pkg/textmatch"
)

//go:embed lexicon.yaml
var defaultDocument []byte

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
	defaultErr     error
)

// Default returns the lexicon compiled from the embedded document. It is
// compiled on first use and shared afterwards.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLexicon, defaultErr = Parse(defaultDocument)
	})
	return defaultLexicon, defaultErr
}

// MustDefault is Default for callers that cannot continue without it.
func MustDefault() *Lexicon {
	lex, err := Default()
	if err != nil {
		panic(err)
	}
	return lex
}

// Load reads a lexicon document from path. An empty path selects the
// embedded default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and compiles a YAML lexicon document.
func Parse(data []byte) (*Lexicon, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	return doc.compile()
}

// Lower lowercases s with Greek rules, so a trailing capital sigma becomes
// the final form.
func Lower(s string) string {
	return cases.Lower(language.Greek).String(s)
}

type compiler struct {
	err error
}

func (c *compiler) re(expr string) *regexp2.Regexp {
	if c.err != nil {
		return nil
	}
	re, err := textmatch.Compile(expr)
	if err != nil {
		c.err = err
	}
	return re
}

func (c *compiler) each(exprs []string) []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, c.re(textmatch.WordStart+`(?:`+e+`)`))
	}
	return out
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (d document) compile() (*Lexicon, error) {
	if strings.TrimSpace(d.DefaultTitle) == "" {
		return nil, fmt.Errorf("%w: default_title is required", ErrInvalidLexicon)
	}
	if len(d.Entities.StopPrepositions) == 0 {
		return nil, fmt.Errorf("%w: entities.stop_prepositions is required", ErrInvalidLexicon)
	}
	maxLen := d.Entities.MaxLength
	if maxLen <= 0 {
		maxLen = 40
	}

	vocab, err := d.vocabulary()
	if err != nil {
		return nil, err
	}

	c := &compiler{}
	lex := &Lexicon{
		DefaultTitle: strings.TrimSpace(d.DefaultTitle),
		Symbols:      make(map[model.Marker]SymbolPattern, len(model.SymbolMarkers)),
		MinuteUnits:  make(map[string]struct{}),
		Reserved:     make(map[string]struct{}),
		Vocabulary:   vocab,
	}

	units := append(append([]string{}, d.Estimate.HourUnits...), d.Estimate.MinuteUnits...)
	stops := append(append([]string{}, d.Entities.StopPrepositions...), d.Entities.Terminators...)
	terminator := `(?=\s+` + textmatch.Alternation(stops) + textmatch.WordEnd +
		`|\s*[@#/+&]` +
		`|\s+[\p{L}_]+=\{` +
		`|\s*[,;:!?()\[\]{}"«»“”‘’]` +
		`|'(?![\p{L}])` +
		`|\.(?:\s|$)` +
		`|\s+\d{1,2}(?::\d{2})?\s*(?:[ap]\.?m|[πμ]\.?μ)\.?` + textmatch.WordEnd +
		`|\s+\d+(?:[.,]\d+)?\s*` + textmatch.Alternation(units) + textmatch.WordEnd +
		`|\s*$)`

	lex.Structured = c.re(`(?<![\p{L}\p{N}_])(?<kind>task|personnel|work_order|project|client)=\{(?<value>[^{}]*)\}`)

	rest := strconv.Itoa(maxLen - 1)
	for _, m := range model.SymbolMarkers {
		marker := regexp2.Escape(string(m))
		var sp SymbolPattern
		if m == model.MarkerTask {
			sp.Name = c.re(`\G` + marker + `(?<value>\d{1,` + strconv.Itoa(maxLen) + `})(?![\p{L}\p{N}])`)
			sp.Word = c.re(`(?<![\p{L}\p{M}\p{N}_])` + marker + `(?<value>\d{1,` + strconv.Itoa(maxLen) + `})(?![\p{L}\p{N}])`)
		} else {
			sp.Name = c.re(`\G` + marker + `(?<value>[\p{L}\p{N}][\p{L}\p{M}\p{N}\s\-._]{0,` + rest + `}?)` + terminator)
			sp.Word = c.re(`(?<![\p{L}\p{M}\p{N}_])` + marker + `(?<value>[\p{L}\p{N}][\p{L}\p{M}\p{N}\-._]{0,` + rest + `})`)
		}
		lex.Symbols[m] = sp
	}

	lex.CreatePhrases = c.each(d.Intent.CreatePatterns)
	lex.UpdatePhrases = c.each(d.Intent.UpdatePatterns)
	lex.FieldName = c.re(textmatch.Words(d.Intent.FieldNames))
	lex.UpdateVerb = c.re(textmatch.Words(d.Intent.UpdateVerbs))
	lex.ActionVerb = c.re(textmatch.Words(append(append([]string{}, d.Intent.CreateVerbs...), d.Intent.UpdateVerbs...)))
	lex.GreekCreation = c.re(textmatch.WordStart + anyOf(d.Intent.GreekCreationPatterns) + textmatch.WordEnd)
	lex.TaskWord = c.re(textmatch.Words(d.Intent.TaskWords))
	lex.TaskContext = c.re(textmatch.Words(d.Intent.ContextPrepositions))

	var allPriority []string
	for _, p := range d.Priority {
		level, ok := model.ParsePriority(p.Level)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPriority, p.Level)
		}
		rule := PriorityRule{Level: level}
		if len(p.Phrases) > 0 {
			rule.Patterns = append(rule.Patterns, c.re(textmatch.Words(p.Phrases)))
			allPriority = append(allPriority, textmatch.Alternation(p.Phrases))
		}
		for _, pat := range p.Patterns {
			rule.Patterns = append(rule.Patterns, c.re(textmatch.WordStart+`(?:`+pat+`)`+textmatch.WordEnd))
			allPriority = append(allPriority, `(?:`+pat+`)`)
		}
		lex.Priorities = append(lex.Priorities, rule)
		for _, w := range p.Phrases {
			lex.reserve(w)
		}
	}
	lex.PriorityPhrase = c.re(textmatch.WordStart + anyOf(allPriority) + textmatch.WordEnd)

	lex.Quoted = c.re(`"(?<q1>[^"\n]+)"` +
		`|(?<![\p{L}\p{N}])'(?<q2>[^'\n]+)'(?![\p{L}\p{N}])` +
		`|“(?<q3>[^”\n]+)”` +
		`|‘(?<q4>[^’\n]+)’` +
		`|«(?<q5>[^»\n]+)»`)

	for _, intro := range d.Title.Introducers {
		expr := textmatch.WordStart + textmatch.Phrase(intro)
		if r, _ := utf8.DecodeLastRuneInString(intro); unicode.IsLetter(r) {
			expr += textmatch.WordEnd
		}
		expr += `\s*["'«“‘]?(?<title>[^\s"«»“”‘’'][^"«»“”‘’\n]*?)` + terminator
		lex.TitleIntroducers = append(lex.TitleIntroducers, c.re(expr))
	}
	lex.TitleStopWord = c.re(textmatch.Words(d.Title.StopWords))
	lex.TimeToken = c.re(`^\d{1,2}(?:[:.]\d{2})?\s*(?:[ap]\.?m\.?|[πμ]\.?μ\.?)?$`)

	lex.Description = c.re(textmatch.WordStart + textmatch.Alternation(d.Description.Labels) +
		`\s*:\s*["'«“]?(?<text>[^"'«»“”\n]*)["'»”]?`)
	lex.Estimate = c.re(`(?<![\d.,])(?<n>\d+(?:[.,]\d+)?)\s*(?<unit>` + textmatch.Alternation(units) + `)` + textmatch.WordEnd)
	for _, u := range d.Estimate.MinuteUnits {
		lex.MinuteUnits[Lower(u)] = struct{}{}
	}

	for _, w := range d.Title.StopWords {
		lex.reserve(w)
	}
	for _, r := range vocab.RelativeDays {
		lex.reserve(r.Phrase)
	}
	for _, words := range vocab.Weekdays {
		for _, w := range words {
			lex.reserve(w)
		}
	}
	for _, pod := range vocab.PartsOfDay {
		for _, w := range pod.Words {
			lex.reserve(w)
		}
	}
	for _, u := range units {
		lex.reserve(u)
	}
	for _, u := range vocab.DurationUnits {
		for _, w := range u.Words {
			lex.reserve(w)
		}
	}
	for w := range vocab.NumberWords {
		lex.reserve(w)
	}

	if c.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, c.err)
	}
	return lex, nil
}

// anyOf joins raw pattern fragments into one group.
func anyOf(exprs []string) string {
	if len(exprs) == 0 {
		return textmatch.Never
	}
	return `(?:` + strings.Join(exprs, "|") + `)`
}

// reserve records every word of phrase as unfit for a fallback title.
func (l *Lexicon) reserve(phrase string) {
	for _, w := range strings.Fields(Lower(phrase)) {
		l.Reserved[w] = struct{}{}
	}
}

// IsReserved reports whether word (any case) is a stop, date, unit or
// priority word.
func (l *Lexicon) IsReserved(word string) bool {
	_, ok := l.Reserved[Lower(word)]
	return ok
}

func (d document) vocabulary() (datemath.Vocabulary, error) {
	v := datemath.Vocabulary{
		DurationPrefixes: d.Dates.DurationPrefixes,
		Weekdays:         make(map[time.Weekday][]string, len(d.Dates.Weekdays)),
		NextModifiers:    d.Dates.NextModifiers,
		StartMarkers:     d.Dates.StartMarkers,
		AtPrefixes:       d.Dates.AtPrefixes,
		OClock:           d.Dates.OClock,
		NumberWords:      d.Dates.NumberWords,
		HourUnits:        append(append([]string{}, d.Estimate.HourUnits...), d.Estimate.MinuteUnits...),
	}
	for _, r := range d.Dates.Relative {
		v.RelativeDays = append(v.RelativeDays, datemath.RelativeDay{Phrase: r.Phrase, Offset: r.Offset})
	}
	for _, u := range d.Dates.DurationUnits {
		v.DurationUnits = append(v.DurationUnits, datemath.DurationUnit{Words: u.Words, Days: u.Days, Months: u.Months})
	}

	names := make([]string, 0, len(d.Dates.Weekdays))
	for name := range d.Dates.Weekdays {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return datemath.Vocabulary{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
		}
		v.Weekdays[day] = append(v.Weekdays[day], d.Dates.Weekdays[name]...)
	}

	for _, p := range d.Dates.PartsOfDay {
		if p.From < 0 || p.To > 23 || p.From > p.To {
			return datemath.Vocabulary{}, fmt.Errorf("%w: part of day %q has window %d-%d", ErrInvalidLexicon, p.Name, p.From, p.To)
		}
		v.PartsOfDay = append(v.PartsOfDay, datemath.PartOfDay{Name: p.Name, Words: p.Words, From: p.From, To: p.To})
	}
	return v, nil
}
