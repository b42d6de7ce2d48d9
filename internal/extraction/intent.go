package extraction

import (
	"encoding/hex"

	"github.com/dlclark/regexp2"

	"taskparse/internal/lexicon"
	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

// ClassifyIntent applies the intent rules in precedence order to the
// lowercased text; the first rule that fires decides.
func (p *Processor) ClassifyIntent(lower string, entities []model.EntityMatch) model.Intent {
	lex := p.lex

	// A structured object id is machine-generated input; any update cue
	// settles it before the phrase rules run.
	if hasStructuredTaskID(entities) &&
		(anyMatch(lex.UpdatePhrases, lower) ||
			textmatch.Contains(lex.FieldName, lower) ||
			textmatch.Contains(lex.UpdateVerb, lower)) {
		return model.IntentUpdateTask
	}

	if anyMatch(lex.CreatePhrases, lower) {
		return model.IntentCreateTask
	}
	if anyMatch(lex.UpdatePhrases, lower) {
		return model.IntentUpdateTask
	}
	if textmatch.Contains(lex.TaskWord, lower) && textmatch.Contains(lex.TaskContext, lower) {
		return model.IntentCreateTask
	}
	if textmatch.Contains(lex.GreekCreation, lower) {
		return model.IntentCreateTask
	}
	return model.IntentUnknown
}

func anyMatch(patterns []*regexp2.Regexp, s string) bool {
	for _, re := range patterns {
		if textmatch.Contains(re, s) {
			return true
		}
	}
	return false
}

func hasStructuredTaskID(entities []model.EntityMatch) bool {
	for _, e := range entities {
		if e.Marker == model.MarkerStructured && e.Kind == model.EntityTask && isObjectID(e.Value) {
			return true
		}
	}
	return false
}

// isObjectID reports whether v is a 24 character hexadecimal identifier.
func isObjectID(v string) bool {
	v = lexicon.Lower(v)
	if len(v) != 24 {
		return false
	}
	_, err := hex.DecodeString(v)
	return err == nil
}
