package usecase

import (
	"context"

	"taskparse/internal/command"
)

// examplePhrases are the canned commands served by Examples.
var examplePhrases = []string{
	"create a task in #Garden Care for tomorrow",
	"add task 'Plant watering' for @John Doe urgent priority",
	"schedule task for +Maintenance Project due friday",
	"new task &Acme Corp inspection 2 hours",
	"δημιούργησε εργασία για @Μαρία αύριο στις 10 π.μ.",
	"update /12345 priority to high",
}

// Examples parses the canned phrases.
func (uc *implUseCase) Examples(ctx context.Context) (command.ExamplesOutput, error) {
	now := uc.now()
	out := command.ExamplesOutput{Examples: make([]command.Example, 0, len(examplePhrases))}
	for _, phrase := range examplePhrases {
		op, err := uc.run(ctx, phrase, now)
		if err != nil {
			return command.ExamplesOutput{}, err
		}
		out.Examples = append(out.Examples, command.Example{Input: phrase, Operation: op})
	}
	return out, nil
}
