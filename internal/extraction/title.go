package extraction

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

const maxTitleWords = 6

var quoteGroups = []string{"q1", "q2", "q3", "q4", "q5"}

// ResolveTitle derives a title from the original text. The rules run in
// order and the first one that yields text wins; the lexicon's default title
// is the last resort, so the result is never empty.
func (p *Processor) ResolveTitle(text string, entities []model.EntityMatch) string {
	rules := []func() (string, bool){
		func() (string, bool) { return p.quotedTitle(text) },
		func() (string, bool) { return p.introducedTitle(text) },
		func() (string, bool) { return p.residualTitle(text, entities) },
		func() (string, bool) { return entityTitle(entities) },
		func() (string, bool) { return p.wordTitle(text, entities) },
	}
	for _, rule := range rules {
		if title, ok := rule(); ok {
			return title
		}
	}
	return p.lex.DefaultTitle
}

func (p *Processor) quotedTitle(text string) (string, bool) {
	re := p.lex.Quoted
	for m := textmatch.Find(re, []rune(text), 0); m != nil; m = textmatch.Next(re, m) {
		for _, name := range quoteGroups {
			if q, ok := textmatch.Group(m, name); ok {
				if q = strings.TrimSpace(q); q != "" {
					return q, true
				}
			}
		}
	}
	return "", false
}

func (p *Processor) introducedTitle(text string) (string, bool) {
	runes := []rune(text)
	for _, re := range p.lex.TitleIntroducers {
		for m := textmatch.Find(re, runes, 0); m != nil; m = textmatch.Next(re, m) {
			raw, _ := textmatch.Group(m, "title")
			if title := strings.Join(strings.Fields(raw), " "); title != "" {
				return title, true
			}
		}
	}
	return "", false
}

// residualTitle removes everything the other extractors account for and
// keeps the first few remaining words.
func (p *Processor) residualTitle(text string, entities []model.EntityMatch) (string, bool) {
	runes := excise([]rune(text), entities)

	s := string(runes)
	if p.lex.Description != nil {
		s = textmatch.ReplaceAll(p.lex.Description, s, " ")
	}
	s = p.dates.Strip(s)
	if p.lex.Estimate != nil {
		s = textmatch.ReplaceAll(p.lex.Estimate, s, " ")
	}
	if p.lex.PriorityPhrase != nil {
		s = textmatch.ReplaceAll(p.lex.PriorityPhrase, s, " ")
	}
	s = textmatch.ReplaceAll(p.lex.TitleStopWord, s, " ")

	var words []string
	for _, w := range strings.Fields(s) {
		if hasWordRune(w) {
			words = append(words, w)
		}
	}
	joined := strings.Join(words, " ")
	if utf8.RuneCountInString(joined) <= 2 || isNumeric(joined) {
		return "", false
	}
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " "), true
}

// excise blanks out entity spans, highest start first so that the offsets
// of earlier spans stay valid.
func excise(runes []rune, entities []model.EntityMatch) []rune {
	spans := make([]model.Span, 0, len(entities))
	for _, e := range entities {
		spans = append(spans, e.Span)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })

	for _, sp := range spans {
		if sp.Start < 0 || sp.End > len(runes) || sp.Start >= sp.End {
			continue
		}
		runes = slices.Replace(runes, sp.Start, sp.End, ' ')
	}
	return runes
}

func entityTitle(entities []model.EntityMatch) (string, bool) {
	for _, e := range entities {
		switch e.Kind {
		case model.EntityWorkOrder, model.EntityProject, model.EntityClient:
			if utf8.RuneCountInString(e.Value) > 2 {
				return e.Value, true
			}
		}
	}
	return "", false
}

// wordTitle picks the first plain word outside every entity span. Marker
// words and kind={...} payloads never qualify, even unparsed ones.
func (p *Processor) wordTitle(text string, entities []model.EntityMatch) (string, bool) {
	s := textmatch.ReplaceAll(p.lex.Structured, string(excise([]rune(text), entities)), " ")
	for _, raw := range strings.Fields(s) {
		if strings.ContainsAny(raw[:1], "@#/+&") || strings.Contains(raw, "={") {
			continue
		}
		w := strings.TrimFunc(raw, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) })
		if utf8.RuneCountInString(w) <= 3 || p.lex.IsReserved(w) || textmatch.Contains(p.lex.TimeToken, w) {
			continue
		}
		return w, true
	}
	return "", false
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0
}

func isNumeric(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return digits > 0
}
