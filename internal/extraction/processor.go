// Package extraction turns a free-text command into a model.TaskOperation.
//
// Every extractor is a pure function of the input text and the shared,
// read-only lexicon, so a Processor may be used from many goroutines.
package extraction

import (
	"fmt"
	"strings"
	"time"

	"taskparse/internal/lexicon"
	"taskparse/internal/model"
	"taskparse/pkg/datemath"
)

// Processor runs the extraction pipeline.
type Processor struct {
	lex   *lexicon.Lexicon
	dates *datemath.Parser
}

// New creates a Processor over a compiled lexicon and a date parser built
// from the same lexicon's vocabulary.
func New(lex *lexicon.Lexicon, dates *datemath.Parser) *Processor {
	return &Processor{lex: lex, dates: dates}
}

// NewDefault builds a Processor from the embedded lexicon for timezone.
func NewDefault(timezone string) (*Processor, error) {
	lex, err := lexicon.Default()
	if err != nil {
		return nil, err
	}
	dates, err := datemath.NewParser(timezone, lex.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("extraction: %w", err)
	}
	return New(lex, dates), nil
}

// Load builds a Processor from the lexicon file at path, or the embedded
// lexicon when path is empty.
func Load(path, timezone string) (*Processor, error) {
	lex, err := lexicon.Load(path)
	if err != nil {
		return nil, err
	}
	dates, err := datemath.NewParser(timezone, lex.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("extraction: %w", err)
	}
	return New(lex, dates), nil
}

// Process extracts a task operation from text using the current time.
func (p *Processor) Process(text string) model.TaskOperation {
	return p.ProcessAt(text, time.Now())
}

// ProcessAt extracts a task operation from text. now is the single clock
// reading every date in the result is relative to.
func (p *Processor) ProcessAt(text string, now time.Time) model.TaskOperation {
	lower := lexicon.Lower(strings.TrimSpace(text))

	entities := p.ExtractEntities(text)
	intent := p.ClassifyIntent(lower, entities)

	op := model.TaskOperation{
		Intent:         intent,
		Title:          p.ResolveTitle(text, entities),
		Description:    p.ExtractDescription(text),
		Priority:       p.ClassifyPriority(lower),
		Entities:       entities,
		EstimatedHours: p.EstimateHours(lower),
	}
	op.Assignees, op.WorkOrder, op.Project, op.Client = selectFields(entities)

	if r, ok := p.dates.Resolve(lower, now, datemath.ScopeWhole); ok {
		due := r.Time
		op.DueDate = &due
	}
	if r, ok := p.dates.Resolve(lower, now, datemath.ScopeFromMarker); ok {
		start := r.Time
		op.StartDate = &start
	}

	op.Confidence = p.Score(lower, intent, entities)
	return op
}

// Location is the timezone dates are resolved in.
func (p *Processor) Location() *time.Location {
	return p.dates.Location()
}
