package extraction

import (
	"math"

	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

const (
	intentWeight   = 0.45
	entityWeight   = 0.12
	entityCap      = 0.35
	taskWordWeight = 0.12
	actionWeight   = 0.08
)

type signals struct {
	intentKnown bool
	entities    int
	taskWord    bool
	actionVerb  bool
}

// Score is a heuristic coverage signal in [0, 1], rounded to two decimals.
// It is not a calibrated probability.
func (p *Processor) Score(lower string, intent model.Intent, entities []model.EntityMatch) float64 {
	return score(signals{
		intentKnown: intent != model.IntentUnknown,
		entities:    len(entities),
		taskWord:    textmatch.Contains(p.lex.TaskWord, lower),
		actionVerb:  textmatch.Contains(p.lex.ActionVerb, lower),
	})
}

func score(s signals) float64 {
	total := math.Min(entityCap, entityWeight*float64(s.entities))
	if s.intentKnown {
		total += intentWeight
	}
	if s.taskWord {
		total += taskWordWeight
	}
	if s.actionVerb {
		total += actionWeight
	}
	return math.Round(math.Min(1, total)*100) / 100
}
