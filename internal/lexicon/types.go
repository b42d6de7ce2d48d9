package lexicon

import (
	"github.com/dlclark/regexp2"

	"taskparse/internal/model"
	"taskparse/pkg/datemath"
)

// Lexicon is the compiled pattern library. It is built once and shared
// read-only by every pipeline call.
type Lexicon struct {
	DefaultTitle string

	// Structured matches kind={payload} references.
	Structured *regexp2.Regexp
	// Symbols holds, per marker, the anchored name pattern tried at a marker
	// position and the single-word fallback used to find marker positions.
	Symbols map[model.Marker]SymbolPattern

	CreatePhrases  []*regexp2.Regexp
	UpdatePhrases  []*regexp2.Regexp
	FieldName      *regexp2.Regexp
	UpdateVerb     *regexp2.Regexp
	ActionVerb     *regexp2.Regexp
	GreekCreation  *regexp2.Regexp
	TaskWord       *regexp2.Regexp
	TaskContext    *regexp2.Regexp
	Priorities     []PriorityRule
	PriorityPhrase *regexp2.Regexp

	Quoted           *regexp2.Regexp
	TitleIntroducers []*regexp2.Regexp
	TitleStopWord    *regexp2.Regexp
	TimeToken        *regexp2.Regexp

	Description *regexp2.Regexp
	Estimate    *regexp2.Regexp
	MinuteUnits map[string]struct{}

	// Reserved holds lowercase words that never become a fallback title.
	Reserved map[string]struct{}

	Vocabulary datemath.Vocabulary
}

// SymbolPattern is the pair of patterns used for one prefix marker.
type SymbolPattern struct {
	Name *regexp2.Regexp
	Word *regexp2.Regexp
}

// PriorityRule is one priority level and the patterns that select it.
type PriorityRule struct {
	Level    model.Priority
	Patterns []*regexp2.Regexp
}

type document struct {
	DefaultTitle string         `yaml:"default_title"`
	Entities     entitiesDoc    `yaml:"entities"`
	Intent       intentDoc      `yaml:"intent"`
	Priority     []priorityDoc  `yaml:"priority"`
	Dates        datesDoc       `yaml:"dates"`
	Title        titleDoc       `yaml:"title"`
	Description  descriptionDoc `yaml:"description"`
	Estimate     estimateDoc    `yaml:"estimate"`
}

type entitiesDoc struct {
	MaxLength        int      `yaml:"max_length"`
	StopPrepositions []string `yaml:"stop_prepositions"`
	Terminators      []string `yaml:"terminators"`
}

type intentDoc struct {
	CreatePatterns        []string `yaml:"create_patterns"`
	UpdatePatterns        []string `yaml:"update_patterns"`
	FieldNames            []string `yaml:"field_names"`
	UpdateVerbs           []string `yaml:"update_verbs"`
	CreateVerbs           []string `yaml:"create_verbs"`
	GreekCreationPatterns []string `yaml:"greek_creation_patterns"`
	TaskWords             []string `yaml:"task_words"`
	ContextPrepositions   []string `yaml:"context_prepositions"`
}

type priorityDoc struct {
	Level    string   `yaml:"level"`
	Phrases  []string `yaml:"phrases"`
	Patterns []string `yaml:"patterns"`
}

type datesDoc struct {
	Relative         []relativeDoc       `yaml:"relative"`
	DurationPrefixes []string            `yaml:"duration_prefixes"`
	DurationUnits    []durationUnitDoc   `yaml:"duration_units"`
	Weekdays         map[string][]string `yaml:"weekdays"`
	NextModifiers    []string            `yaml:"next_modifiers"`
	StartMarkers     []string            `yaml:"start_markers"`
	AtPrefixes       []string            `yaml:"at_prefixes"`
	OClock           []string            `yaml:"oclock"`
	NumberWords      map[string]int      `yaml:"number_words"`
	PartsOfDay       []partOfDayDoc      `yaml:"parts_of_day"`
}

type relativeDoc struct {
	Phrase string `yaml:"phrase"`
	Offset int    `yaml:"offset"`
}

type durationUnitDoc struct {
	Words  []string `yaml:"words"`
	Days   int      `yaml:"days"`
	Months int      `yaml:"months"`
}

type partOfDayDoc struct {
	Name  string   `yaml:"name"`
	From  int      `yaml:"from"`
	To    int      `yaml:"to"`
	Words []string `yaml:"words"`
}

type titleDoc struct {
	Introducers []string `yaml:"introducers"`
	StopWords   []string `yaml:"stop_words"`
}

type descriptionDoc struct {
	Labels []string `yaml:"labels"`
}

type estimateDoc struct {
	HourUnits   []string `yaml:"hour_units"`
	MinuteUnits []string `yaml:"minute_units"`
}
