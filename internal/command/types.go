package command

import "taskparse/internal/model"

// --- UseCase Inputs ---

// ProcessInput is one command to parse. ParsedText, when set, is the
// structured `kind={id}` rendering of Text and is what gets parsed.
type ProcessInput struct {
	Text         string
	OriginalText string
	ParsedText   string
	UserID       string
	TenantID     string
}

// Source returns the text the pipeline should run on.
func (in ProcessInput) Source() string {
	if in.ParsedText != "" {
		return in.ParsedText
	}
	return in.Text
}

// Echo returns the text reported back as original_text.
func (in ProcessInput) Echo() string {
	if in.OriginalText != "" {
		return in.OriginalText
	}
	return in.Text
}

type BatchInput struct {
	Items []ProcessInput
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Operation    model.TaskOperation
	OriginalText string
	UserID       string
	TenantID     string
}

type BatchOutput struct {
	Results []ProcessOutput
}

// Example is one canned phrase with its parse result.
type Example struct {
	Input     string
	Operation model.TaskOperation
}

type ExamplesOutput struct {
	Examples []Example
}
