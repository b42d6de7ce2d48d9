package extraction

import (
	"math"
	"strconv"
	"strings"

	"taskparse/internal/lexicon"
	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

// selectFields spreads the entity list over the task fields: every personnel
// value is an assignee, the other kinds keep their first value.
func selectFields(entities []model.EntityMatch) (assignees []string, workOrder, project, client *string) {
	assignees = []string{}
	for _, e := range entities {
		value := e.Value
		switch e.Kind {
		case model.EntityPersonnel:
			assignees = append(assignees, value)
		case model.EntityWorkOrder:
			if workOrder == nil {
				workOrder = &value
			}
		case model.EntityProject:
			if project == nil {
				project = &value
			}
		case model.EntityClient:
			if client == nil {
				client = &value
			}
		}
	}
	return assignees, workOrder, project, client
}

// ExtractDescription returns the text after a description label, or nil.
func (p *Processor) ExtractDescription(text string) *string {
	m := textmatch.Find(p.lex.Description, []rune(text), 0)
	if m == nil {
		return nil
	}
	raw, _ := textmatch.Group(m, "text")
	desc := strings.TrimSpace(raw)
	if desc == "" {
		return nil
	}
	return &desc
}

// EstimateHours reads the first "N hours" or "N minutes" expression.
func (p *Processor) EstimateHours(lower string) *float64 {
	m := textmatch.Find(p.lex.Estimate, []rune(lower), 0)
	if m == nil {
		return nil
	}
	n, _ := textmatch.Group(m, "n")
	hours, err := strconv.ParseFloat(strings.Replace(n, ",", ".", 1), 64)
	if err != nil {
		return nil
	}
	unit, _ := textmatch.Group(m, "unit")
	if _, ok := p.lex.MinuteUnits[lexicon.Lower(unit)]; ok {
		hours = math.Round(hours/60*100) / 100
	}
	return &hours
}
