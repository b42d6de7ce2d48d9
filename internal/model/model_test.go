package model_test

import (
	"testing"

	"taskparse/internal/model"
)

func TestParseEntityKind(t *testing.T) {
	tests := []struct {
		in     string
		want   model.EntityKind
		wantOK bool
	}{
		{"personnel", model.EntityPersonnel, true},
		{"work_order", model.EntityWorkOrder, true},
		{"client", model.EntityClient, true},
		{"vendor", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := model.ParseEntityKind(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseEntityKind(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMarkerKind(t *testing.T) {
	for _, m := range model.SymbolMarkers {
		if _, ok := m.Kind(); !ok {
			t.Errorf("marker %q has no kind", m)
		}
	}
	if _, ok := model.MarkerStructured.Kind(); ok {
		t.Error("structured marker must not map to a single kind")
	}
}

func TestSpanOverlaps(t *testing.T) {
	a := model.Span{Start: 0, End: 5}
	tests := []struct {
		b    model.Span
		want bool
	}{
		{model.Span{Start: 5, End: 8}, false},
		{model.Span{Start: 4, End: 8}, true},
		{model.Span{Start: 1, End: 2}, true},
		{model.Span{Start: 8, End: 9}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
	if a.Len() != 5 {
		t.Errorf("expected length 5, got %d", a.Len())
	}
}

func TestEnumStrings(t *testing.T) {
	if got := model.Intent("delete_task").String(); got != "unknown" {
		t.Errorf("invalid intent should print as unknown, got %q", got)
	}
	if got := model.Priority("").String(); got != "medium" {
		t.Errorf("zero priority should print as medium, got %q", got)
	}
	if got := model.PriorityUrgent.String(); got != "urgent" {
		t.Errorf("expected urgent, got %q", got)
	}
}
