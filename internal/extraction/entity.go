package extraction

import (
	"strings"

	"taskparse/internal/lexicon"
	"taskparse/internal/model"
	"taskparse/pkg/textmatch"
)

// ExtractEntities finds entity references in the original text. When any
// structured kind={payload} reference is present it is the only source;
// otherwise the prefix markers are scanned one after another.
func (p *Processor) ExtractEntities(text string) []model.EntityMatch {
	runes := []rune(text)
	if entities, found := p.structuredEntities(runes); found {
		return entities
	}
	return p.symbolEntities(runes)
}

func (p *Processor) structuredEntities(runes []rune) ([]model.EntityMatch, bool) {
	entities := []model.EntityMatch{}
	found := false
	for m := textmatch.Find(p.lex.Structured, runes, 0); m != nil; m = textmatch.Next(p.lex.Structured, m) {
		kindText, _ := textmatch.Group(m, "kind")
		kind, ok := model.ParseEntityKind(lexicon.Lower(kindText))
		if !ok {
			continue
		}
		found = true
		raw, _ := textmatch.Group(m, "value")
		value := cleanValue(raw)
		if value == "" {
			continue
		}
		entities = append(entities, model.EntityMatch{
			Kind:   kind,
			Value:  value,
			Marker: model.MarkerStructured,
			Span:   model.Span{Start: m.Index, End: m.Index + m.Length},
		})
	}
	return entities, found
}

func (p *Processor) symbolEntities(runes []rune) []model.EntityMatch {
	entities := []model.EntityMatch{}
	for _, marker := range model.SymbolMarkers {
		kind, _ := marker.Kind()
		sp := p.lex.Symbols[marker]

		for w := textmatch.Find(sp.Word, runes, 0); w != nil; {
			chosen := w
			if m := textmatch.Find(sp.Name, runes, w.Index); m != nil && m.Index == w.Index {
				chosen = m
			}
			next := chosen.Index + chosen.Length

			raw, _ := textmatch.Group(chosen, "value")
			span := model.Span{Start: chosen.Index, End: next}
			if value := cleanValue(raw); value != "" && !overlapsAny(entities, span) {
				entities = append(entities, model.EntityMatch{
					Kind:   kind,
					Value:  value,
					Marker: marker,
					Span:   span,
				})
			}
			w = textmatch.Find(sp.Word, runes, next)
		}
	}
	return entities
}

func cleanValue(raw string) string {
	v := strings.Join(strings.Fields(raw), " ")
	return strings.TrimRight(v, ".-_ ")
}

func overlapsAny(entities []model.EntityMatch, span model.Span) bool {
	for _, e := range entities {
		if e.Span.Overlaps(span) {
			return true
		}
	}
	return false
}
