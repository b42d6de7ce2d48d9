package lexicon

import "errors"

var (
	ErrInvalidLexicon  = errors.New("lexicon: invalid document")
	ErrUnknownPriority = errors.New("lexicon: unknown priority level")
	ErrUnknownWeekday  = errors.New("lexicon: unknown weekday")
)
