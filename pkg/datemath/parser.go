package datemath

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"taskparse/pkg/textmatch"
)

// partOfDayProximity is how many runes away from a clock token a
// part-of-day word may sit and still disambiguate it.
const partOfDayProximity = 24

// digitStart keeps numeric patterns from starting inside a larger number,
// a date or a decimal.
const digitStart = `(?<![\d:.,/\-])`

// Parser resolves date and time expressions in free text. It is immutable
// after NewParser and safe for concurrent use.
type Parser struct {
	location *time.Location

	relative      []relativeRule
	duration      *regexp2.Regexp
	durationUnits map[string]DurationUnit
	weekday       *regexp2.Regexp
	weekdays      map[string]time.Weekday
	isoDate       *regexp2.Regexp
	numericDate   *regexp2.Regexp
	startMarker   *regexp2.Regexp
	clocks        []clockRule
	numberWords   map[string]int
	partsOfDay    []partOfDayRule
	strippers     []*regexp2.Regexp
}

type relativeRule struct {
	offset int
	re     *regexp2.Regexp
}

type clockRule struct {
	source ClockSource
	re     *regexp2.Regexp
}

type partOfDayRule struct {
	PartOfDay
	re *regexp2.Regexp
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Europe/Athens", compiling its patterns from vocab.
func NewParser(timezone string, vocab Vocabulary) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	p := &Parser{
		location:      loc,
		durationUnits: make(map[string]DurationUnit),
		weekdays:      make(map[string]time.Weekday),
		numberWords:   make(map[string]int),
	}
	if err := p.compile(vocab); err != nil {
		return nil, err
	}
	return p, nil
}

// Location returns the timezone the parser resolves "now" into.
func (p *Parser) Location() *time.Location {
	return p.location
}

func (p *Parser) compile(v Vocabulary) error {
	if len(v.AtPrefixes) == 0 || len(v.HourUnits) == 0 {
		return fmt.Errorf("datemath: vocabulary needs at-prefixes and hour units")
	}

	var err error
	must := func(expr string) *regexp2.Regexp {
		if err != nil {
			return nil
		}
		var re *regexp2.Regexp
		re, err = textmatch.Compile(expr)
		return re
	}

	// Relative phrases keep table order; the first phrase found wins.
	for _, rd := range v.RelativeDays {
		p.relative = append(p.relative, relativeRule{
			offset: rd.Offset,
			re:     must(textmatch.Words([]string{rd.Phrase})),
		})
	}

	var unitWords []string
	for _, u := range v.DurationUnits {
		for _, w := range u.Words {
			p.durationUnits[strings.ToLower(w)] = u
			unitWords = append(unitWords, w)
		}
	}
	if len(v.DurationPrefixes) > 0 && len(unitWords) > 0 {
		p.duration = must(textmatch.WordStart + textmatch.Alternation(v.DurationPrefixes) +
			`\s+(?<n>\d{1,3})\s+(?<unit>` + textmatch.Alternation(unitWords) + `)` + textmatch.WordEnd)
	}

	var dayWords []string
	for day, words := range v.Weekdays {
		for _, w := range words {
			p.weekdays[strings.ToLower(w)] = day
			dayWords = append(dayWords, w)
		}
	}
	sort.Strings(dayWords)
	next := ""
	if len(v.NextModifiers) > 0 {
		next = `(?:(?<next>` + textmatch.Alternation(v.NextModifiers) + `)\s+)?`
	}
	if len(dayWords) > 0 {
		p.weekday = must(textmatch.WordStart + next + `(?<day>` + textmatch.Alternation(dayWords) + `)` + textmatch.WordEnd)
	}

	at := textmatch.Alternation(v.AtPrefixes)
	hourUnits := textmatch.Alternation(v.HourUnits)
	meridiem := `[ap]\.?\s?m\.?` + textmatch.WordEnd
	greekMeridiem := `[πμ]\.?\s?μ\.?` + textmatch.WordEnd

	p.isoDate = must(`(?<![\d/.\-])(?<y>\d{4})-(?<mo>\d{1,2})-(?<d>\d{1,2})(?![\d/.\-])`)
	p.numericDate = must(`(?<!\b` + at + `\s+)` + `(?<![\d/.\-:,])(?<d>\d{1,2})[/.\-](?<mo>\d{1,2})(?:[/.\-](?<y>\d{4}|\d{2}))?` +
		`(?![\d/.\-:]|[.,]\d|\s*` + hourUnits + textmatch.WordEnd + `)`)

	if len(v.StartMarkers) > 0 {
		p.startMarker = must(textmatch.Words(v.StartMarkers))
	}

	clock12 := digitStart + `(?<h>\d{1,2})(?::(?<m>[0-5]\d))?\s*(?<ap>[ap])\.?\s?m\.?` + textmatch.WordEnd
	clockGreek := digitStart + `(?<h>\d{1,2})(?::(?<m>[0-5]\d))?\s*(?<ap>[πμ])\.?\s?μ\.?` + textmatch.WordEnd
	clockAt := textmatch.WordStart + at + `\s+` + digitStart + `(?<h>\d{1,2})(?:[:.](?<m>[0-5]\d))?` +
		`(?![\d/\-\p{L}]|[:.,]\d|\s*(?:` + meridiem + `|` + greekMeridiem + `)|\s*` + hourUnits + textmatch.WordEnd + `)`
	clock24 := digitStart + `(?<h>[01]?\d|2[0-3]):(?<m>[0-5]\d)(?![\d:])`

	var numbers []string
	for w, n := range v.NumberWords {
		p.numberWords[strings.ToLower(w)] = n
		numbers = append(numbers, w)
	}
	sort.Strings(numbers)
	spelled := ""
	if len(numbers) > 0 && len(v.OClock) > 0 {
		spelled = textmatch.WordStart + `(?:` + at + `\s+)?(?<num>` + textmatch.Alternation(numbers) + `)\s+` +
			textmatch.Alternation(v.OClock) + textmatch.WordEnd
	}

	p.clocks = []clockRule{
		{source: ClockMeridiem, re: must(clock12)},
		{source: ClockGreekMeridiem, re: must(clockGreek)},
		{source: ClockAtPrefix, re: must(clockAt)},
	}
	if spelled != "" {
		p.clocks = append(p.clocks, clockRule{source: ClockSpelled, re: must(spelled)})
	}
	p.clocks = append(p.clocks, clockRule{source: Clock24Hour, re: must(clock24)})

	var podWords []string
	for _, pod := range v.PartsOfDay {
		p.partsOfDay = append(p.partsOfDay, partOfDayRule{PartOfDay: pod, re: must(textmatch.Words(pod.Words))})
		podWords = append(podWords, pod.Words...)
	}

	if err != nil {
		return fmt.Errorf("datemath: %w", err)
	}

	// Strip order: the widest forms go first so their pieces are not left
	// behind by a narrower pattern.
	optAt := `(?:` + textmatch.WordStart + at + `\s+)?`
	exprs := []string{}
	if spelled != "" {
		exprs = append(exprs, spelled)
	}
	exprs = append(exprs, optAt+clock12, optAt+clockGreek, clockAt, optAt+clock24)
	if len(v.OClock) > 0 {
		exprs = append(exprs, textmatch.Words(v.OClock))
	}
	if p.duration != nil {
		exprs = append(exprs, p.duration.String())
	}
	var phrases []string
	for _, rd := range v.RelativeDays {
		phrases = append(phrases, rd.Phrase)
	}
	if len(phrases) > 0 {
		exprs = append(exprs, textmatch.Words(phrases))
	}
	if p.weekday != nil {
		exprs = append(exprs, p.weekday.String())
	}
	exprs = append(exprs, p.isoDate.String(), p.numericDate.String())
	if len(podWords) > 0 {
		exprs = append(exprs, textmatch.Words(podWords))
	}
	for _, expr := range exprs {
		p.strippers = append(p.strippers, must(expr))
	}

	if err != nil {
		return fmt.Errorf("datemath: %w", err)
	}
	return nil
}
