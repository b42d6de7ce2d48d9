package extraction

import "taskparse/internal/model"

// ClassifyPriority returns the most urgent level with a matching phrase, or
// medium when nothing matches.
func (p *Processor) ClassifyPriority(lower string) model.Priority {
	for _, rule := range p.lex.Priorities {
		if anyMatch(rule.Patterns, lower) {
			return rule.Level
		}
	}
	return model.PriorityMedium
}
