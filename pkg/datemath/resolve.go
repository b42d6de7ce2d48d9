package datemath

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"taskparse/pkg/textmatch"
)

type clock struct {
	hour    int
	minute  int
	source  ClockSource
	shifted bool
}

// Resolve finds a date and/or time expression in text and combines it into
// one timestamp relative to now. now should be read once by the caller so
// that every resolution in a call agrees on it.
func (p *Parser) Resolve(text string, now time.Time, scope Scope) (Result, bool) {
	now = now.In(p.location)
	runes := []rune(text)

	if scope == ScopeFromMarker {
		m := textmatch.Find(p.startMarker, runes, 0)
		if m == nil {
			return Result{}, false
		}
		runes = runes[m.Index:]
	}

	date, source, hasDate := p.resolveDate(runes, now)
	clk, hasClock := p.resolveClock(runes)

	switch {
	case hasClock:
		if !hasDate {
			date, source = now, DateToday
		}
		return Result{
			Time:        time.Date(date.Year(), date.Month(), date.Day(), clk.hour, clk.minute, 0, 0, p.location),
			DateSource:  source,
			ClockSource: clk.source,
			HourShifted: clk.shifted,
		}, true
	case hasDate:
		if pod, ok := p.firstPartOfDay(runes); ok {
			return Result{
				Time:        time.Date(date.Year(), date.Month(), date.Day(), pod.Midpoint(), 0, 0, 0, p.location),
				DateSource:  source,
				ClockSource: ClockPartOfDay,
			}, true
		}
		return Result{Time: date, DateSource: source}, true
	}
	return Result{}, false
}

// Strip removes every date and time expression the parser recognizes,
// leaving single spaces in their place.
func (p *Parser) Strip(text string) string {
	for _, re := range p.strippers {
		text = textmatch.ReplaceAll(re, text, " ")
	}
	return text
}

func (p *Parser) resolveDate(runes []rune, now time.Time) (time.Time, DateSource, bool) {
	for _, rule := range p.relative {
		if textmatch.Find(rule.re, runes, 0) != nil {
			return now.AddDate(0, 0, rule.offset), DateRelative, true
		}
	}

	if m := textmatch.Find(p.duration, runes, 0); m != nil {
		n, _ := strconv.Atoi(groupOr(m, "n"))
		unit := p.durationUnits[strings.ToLower(groupOr(m, "unit"))]
		return now.AddDate(0, unit.Months*n, unit.Days*n), DateDuration, true
	}

	if m := textmatch.Find(p.weekday, runes, 0); m != nil {
		target := p.weekdays[strings.ToLower(groupOr(m, "day"))]
		days := int(target - now.Weekday())
		if days <= 0 {
			days += 7
		}
		if _, ok := textmatch.Group(m, "next"); ok {
			days += 7
		}
		return now.AddDate(0, 0, days), DateWeekday, true
	}

	if t, ok := p.explicitDate(runes, now); ok {
		return t, DateExplicit, true
	}
	return time.Time{}, "", false
}

// explicitDate tries ISO dates first, then day-first numeric dates. Matches
// that do not name a real calendar day are skipped.
func (p *Parser) explicitDate(runes []rune, now time.Time) (time.Time, bool) {
	for m := textmatch.Find(p.isoDate, runes, 0); m != nil; m = textmatch.Next(p.isoDate, m) {
		if t, ok := calendarDate(atoi(m, "y"), atoi(m, "mo"), atoi(m, "d"), now); ok {
			return t, true
		}
	}
	for m := textmatch.Find(p.numericDate, runes, 0); m != nil; m = textmatch.Next(p.numericDate, m) {
		year := now.Year()
		if y, ok := textmatch.Group(m, "y"); ok {
			year, _ = strconv.Atoi(y)
			if len(y) == 2 {
				year += 2000
			}
		}
		if t, ok := calendarDate(year, atoi(m, "mo"), atoi(m, "d"), now); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func calendarDate(year, month, day int, now time.Time) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// resolveClock tries each notation in priority order; within a notation the
// first valid occurrence wins.
func (p *Parser) resolveClock(runes []rune) (clock, bool) {
	for _, rule := range p.clocks {
		for m := textmatch.Find(rule.re, runes, 0); m != nil; m = textmatch.Next(rule.re, m) {
			if c, ok := p.readClock(rule.source, m, runes); ok {
				return c, true
			}
		}
	}
	return clock{}, false
}

func (p *Parser) readClock(source ClockSource, m *regexp2.Match, runes []rune) (clock, bool) {
	c := clock{source: source}
	if _, ok := textmatch.Group(m, "m"); ok {
		c.minute = atoi(m, "m")
	}

	switch source {
	case ClockSpelled:
		c.hour = p.numberWords[strings.ToLower(groupOr(m, "num"))]
	default:
		c.hour = atoi(m, "h")
	}

	switch source {
	case ClockMeridiem, ClockGreekMeridiem:
		if c.hour < 1 || c.hour > 12 {
			return clock{}, false
		}
		ap := strings.ToLower(groupOr(m, "ap"))
		pm := ap == "p" || ap == "μ"
		switch {
		case pm && c.hour != 12:
			c.hour += 12
		case !pm && c.hour == 12:
			c.hour = 0
		}
	case ClockAtPrefix, ClockSpelled:
		if c.hour >= 1 && c.hour <= 12 {
			if pod, ok := p.nearestPartOfDay(runes, m.Index, m.Index+m.Length); ok {
				c.hour, c.shifted = shiftHour(c.hour, pod)
			}
		}
	}

	if c.hour < 0 || c.hour > 23 || c.minute > 59 {
		return clock{}, false
	}
	return c, true
}

// shiftHour moves an unqualified hour into the window when the literal
// reading falls outside it and the afternoon reading falls inside.
func shiftHour(hour int, pod PartOfDay) (int, bool) {
	if pod.Contains(hour) {
		return hour, false
	}
	if pod.Contains(hour + 12) {
		return hour + 12, true
	}
	return hour, false
}

func (p *Parser) nearestPartOfDay(runes []rune, start, end int) (PartOfDay, bool) {
	best, bestDist := PartOfDay{}, -1
	for _, rule := range p.partsOfDay {
		for m := textmatch.Find(rule.re, runes, 0); m != nil; m = textmatch.Next(rule.re, m) {
			dist := 0
			switch {
			case m.Index+m.Length <= start:
				dist = start - (m.Index + m.Length)
			case m.Index >= end:
				dist = m.Index - end
			}
			if dist <= partOfDayProximity && (bestDist < 0 || dist < bestDist) {
				best, bestDist = rule.PartOfDay, dist
			}
		}
	}
	return best, bestDist >= 0
}

func (p *Parser) firstPartOfDay(runes []rune) (PartOfDay, bool) {
	best, bestIdx := PartOfDay{}, -1
	for _, rule := range p.partsOfDay {
		if m := textmatch.Find(rule.re, runes, 0); m != nil && (bestIdx < 0 || m.Index < bestIdx) {
			best, bestIdx = rule.PartOfDay, m.Index
		}
	}
	return best, bestIdx >= 0
}

func groupOr(m *regexp2.Match, name string) string {
	s, _ := textmatch.Group(m, name)
	return s
}

func atoi(m *regexp2.Match, name string) int {
	n, _ := strconv.Atoi(groupOr(m, name))
	return n
}
