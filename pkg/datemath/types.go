package datemath

import "time"

// Scope selects which part of the text a resolution looks at.
type Scope int

const (
	// ScopeWhole searches the entire text.
	ScopeWhole Scope = iota
	// ScopeFromMarker searches only the suffix that begins at a start marker
	// ("from", "από"). Without a marker nothing is resolved.
	ScopeFromMarker
)

// DateSource tells which rule produced the calendar date.
type DateSource string

const (
	DateRelative DateSource = "relative"
	DateDuration DateSource = "duration"
	DateWeekday  DateSource = "weekday"
	DateExplicit DateSource = "explicit"
	DateToday    DateSource = "today"
)

// ClockSource tells which notation produced the clock time.
type ClockSource string

const (
	ClockNone          ClockSource = ""
	ClockMeridiem      ClockSource = "meridiem"
	ClockGreekMeridiem ClockSource = "greek_meridiem"
	ClockAtPrefix      ClockSource = "at_prefix"
	ClockSpelled       ClockSource = "spelled"
	Clock24Hour        ClockSource = "24h"
	ClockPartOfDay     ClockSource = "part_of_day"
)

// Result holds a resolved timestamp and how it was obtained.
type Result struct {
	Time        time.Time
	DateSource  DateSource
	ClockSource ClockSource
	// HourShifted is set when an unqualified 1-12 hour was moved into a
	// part-of-day window (e.g. "10" near "evening" became 22).
	HourShifted bool
}

// RelativeDay maps a phrase such as "tomorrow" to a day offset from now.
type RelativeDay struct {
	Phrase string
	Offset int
}

// DurationUnit maps unit words ("days", "εβδομάδες") to a calendar step.
type DurationUnit struct {
	Words  []string
	Days   int
	Months int
}

// PartOfDay is a named window of hours, inclusive on both ends.
type PartOfDay struct {
	Name  string
	Words []string
	From  int
	To    int
}

// Midpoint is the representative hour used when only the part of day is known.
func (p PartOfDay) Midpoint() int {
	return (p.From + p.To) / 2
}

// Contains reports whether hour falls inside the window.
func (p PartOfDay) Contains(hour int) bool {
	return hour >= p.From && hour <= p.To
}

// Vocabulary is the language data the parser compiles its patterns from.
// All words are expected in lowercase.
type Vocabulary struct {
	RelativeDays     []RelativeDay
	DurationPrefixes []string
	DurationUnits    []DurationUnit
	Weekdays         map[time.Weekday][]string
	NextModifiers    []string
	StartMarkers     []string
	AtPrefixes       []string
	OClock           []string
	NumberWords      map[string]int
	PartsOfDay       []PartOfDay
	// HourUnits are the words that turn a number into a duration ("3 hours"),
	// so the number is not read as a clock time.
	HourUnits []string
}
