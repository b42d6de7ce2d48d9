package http

import "taskparse/internal/command"

// --- Request DTOs ---

type processReq struct {
	Text         string `json:"text"`
	OriginalText string `json:"original_text"`
	ParsedText   string `json:"parsed_text"`
	UserID       string `json:"user_id"`
	TenantID     string `json:"tenant_id"`
}

func (r processReq) toInput() command.ProcessInput {
	return command.ProcessInput{
		Text:         r.Text,
		OriginalText: r.OriginalText,
		ParsedText:   r.ParsedText,
		UserID:       r.UserID,
		TenantID:     r.TenantID,
	}
}

// ---

type batchReq struct {
	Items []processReq `json:"items"`
}

func (r batchReq) toInput() command.BatchInput {
	items := make([]command.ProcessInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.toInput())
	}
	return command.BatchInput{Items: items}
}

// --- Response DTOs ---

type processResp struct {
	command.Record
	OriginalText string `json:"original_text"`
	UserID       string `json:"user_id,omitempty"`
	TenantID     string `json:"tenant_id,omitempty"`
}

type batchResp struct {
	Results []processResp `json:"results"`
}

type examplesResp struct {
	Examples []command.ExampleSummary `json:"examples"`
}

func (h *handler) newProcessResp(o command.ProcessOutput) processResp {
	return processResp{
		Record:       command.NewRecord(o.Operation),
		OriginalText: o.OriginalText,
		UserID:       o.UserID,
		TenantID:     o.TenantID,
	}
}

func (h *handler) newBatchResp(o command.BatchOutput) batchResp {
	results := make([]processResp, 0, len(o.Results))
	for _, r := range o.Results {
		results = append(results, h.newProcessResp(r))
	}
	return batchResp{Results: results}
}

func (h *handler) newExamplesResp(o command.ExamplesOutput) examplesResp {
	examples := make([]command.ExampleSummary, 0, len(o.Examples))
	for _, ex := range o.Examples {
		examples = append(examples, command.Summarize(ex))
	}
	return examplesResp{Examples: examples}
}
