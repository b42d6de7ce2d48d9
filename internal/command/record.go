package command

import (
	"taskparse/internal/model"
	"taskparse/pkg/response"
)

// Record is the flat wire form of a TaskOperation shared by every delivery.
type Record struct {
	Intent         string              `json:"intent"`
	Title          string              `json:"title"`
	Description    *string             `json:"description"`
	Priority       string              `json:"priority"`
	Assignees      []string            `json:"assignees"`
	WorkOrder      *string             `json:"work_order"`
	Project        *string             `json:"project"`
	Client         *string             `json:"client"`
	DueDate        *response.Timestamp `json:"due_date"`
	StartDate      *response.Timestamp `json:"start_date"`
	EstimatedHours *float64            `json:"estimated_hours"`
	Entities       []EntityRecord      `json:"entities"`
	Confidence     float64             `json:"confidence"`
	Success        bool                `json:"success"`
}

// EntityRecord is the wire form of an EntityMatch. Span is [start, end)
// in characters of the original text.
type EntityRecord struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Marker string `json:"marker"`
	Span   [2]int `json:"span"`
}

// NewRecord converts op into its wire form. Slices are never null.
func NewRecord(op model.TaskOperation) Record {
	assignees := make([]string, len(op.Assignees))
	copy(assignees, op.Assignees)

	entities := make([]EntityRecord, 0, len(op.Entities))
	for _, e := range op.Entities {
		entities = append(entities, EntityRecord{
			Kind:   string(e.Kind),
			Value:  e.Value,
			Marker: string(e.Marker),
			Span:   [2]int{e.Span.Start, e.Span.End},
		})
	}

	return Record{
		Intent:         op.Intent.String(),
		Title:          op.Title,
		Description:    op.Description,
		Priority:       op.Priority.String(),
		Assignees:      assignees,
		WorkOrder:      op.WorkOrder,
		Project:        op.Project,
		Client:         op.Client,
		DueDate:        response.NewTimestamp(op.DueDate),
		StartDate:      response.NewTimestamp(op.StartDate),
		EstimatedHours: op.EstimatedHours,
		Entities:       entities,
		Confidence:     op.Confidence,
		Success:        true,
	}
}

// ExampleSummary is the short form of an Example.
type ExampleSummary struct {
	Input      string  `json:"input"`
	Intent     string  `json:"intent"`
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
	Entities   int     `json:"entities"`
}

// Summarize builds the short form of ex.
func Summarize(ex Example) ExampleSummary {
	return ExampleSummary{
		Input:      ex.Input,
		Intent:     ex.Operation.Intent.String(),
		Title:      ex.Operation.Title,
		Confidence: ex.Operation.Confidence,
		Entities:   len(ex.Operation.Entities),
	}
}
