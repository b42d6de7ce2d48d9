package extraction_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskparse/internal/extraction"
	"taskparse/internal/model"
)

// Wednesday, May 1, 2024.
var base = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newProcessor(t testing.TB) *extraction.Processor {
	t.Helper()
	p, err := extraction.NewDefault("UTC")
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }

func TestProcessScenarios(t *testing.T) {
	p := newProcessor(t)

	t.Run("work order with tomorrow", func(t *testing.T) {
		op := p.ProcessAt("create a task in #Garden Care for tomorrow", base)

		assert.Equal(t, model.IntentCreateTask, op.Intent)
		assert.Equal(t, model.PriorityMedium, op.Priority)
		assert.Equal(t, "Garden Care", op.Title)
		assert.Equal(t, ptr("Garden Care"), op.WorkOrder)
		want := []model.EntityMatch{
			{Kind: model.EntityWorkOrder, Value: "Garden Care", Marker: model.MarkerWorkOrder, Span: model.Span{Start: 17, End: 29}},
		}
		if diff := cmp.Diff(want, op.Entities); diff != "" {
			t.Errorf("entities mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, op.DueDate)
		assert.True(t, op.DueDate.Equal(time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC)), "due = %v", op.DueDate)
		assert.Nil(t, op.StartDate)
		assert.Equal(t, 0.77, op.Confidence)
	})

	t.Run("quoted title wins", func(t *testing.T) {
		op := p.ProcessAt("add task 'Plant watering' for @John Doe urgent priority", base)

		assert.Equal(t, model.IntentCreateTask, op.Intent)
		assert.Equal(t, "Plant watering", op.Title)
		assert.Equal(t, model.PriorityUrgent, op.Priority)
		assert.Equal(t, []string{"John Doe"}, op.Assignees)
		want := []model.EntityMatch{
			{Kind: model.EntityPersonnel, Value: "John Doe", Marker: model.MarkerPersonnel, Span: model.Span{Start: 30, End: 39}},
		}
		if diff := cmp.Diff(want, op.Entities); diff != "" {
			t.Errorf("entities mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("project due friday at 3pm", func(t *testing.T) {
		op := p.ProcessAt("schedule task for +Maintenance Project due friday at 3pm", base)

		assert.Equal(t, model.IntentCreateTask, op.Intent)
		assert.Equal(t, ptr("Maintenance Project"), op.Project)
		require.Len(t, op.Entities, 1)
		assert.Equal(t, model.EntityProject, op.Entities[0].Kind)
		require.NotNil(t, op.DueDate)
		assert.True(t, op.DueDate.Equal(time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)), "due = %v", op.DueDate)
		assert.Equal(t, "Maintenance Project", op.Title)
	})

	t.Run("structured id with field name", func(t *testing.T) {
		op := p.ProcessAt("update title to Quarterly Review task={64b1f9a2e1234567890abcde}", base)

		assert.Equal(t, model.IntentUpdateTask, op.Intent)
		assert.Equal(t, "Quarterly Review", op.Title)
		want := []model.EntityMatch{
			{Kind: model.EntityTask, Value: "64b1f9a2e1234567890abcde", Marker: model.MarkerStructured, Span: model.Span{Start: 33, End: 64}},
		}
		if diff := cmp.Diff(want, op.Entities); diff != "" {
			t.Errorf("entities mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, op.DueDate)
	})

	t.Run("greek create with monday", func(t *testing.T) {
		op := p.ProcessAt("δημιούργησε μία εργασία για δευτέρα υψηλή προτεραιότητα", base)

		assert.Equal(t, model.IntentCreateTask, op.Intent)
		assert.Equal(t, model.PriorityHigh, op.Priority)
		require.NotNil(t, op.DueDate)
		assert.True(t, op.DueDate.Equal(time.Date(2024, 5, 6, 15, 30, 0, 0, time.UTC)), "due = %v", op.DueDate)
		assert.Equal(t, "New Task", op.Title)
	})

	t.Run("no cues", func(t *testing.T) {
		op := p.ProcessAt("hello there", base)

		assert.Equal(t, model.IntentUnknown, op.Intent)
		assert.Equal(t, "New Task", op.Title)
		assert.Equal(t, model.PriorityMedium, op.Priority)
		assert.LessOrEqual(t, op.Confidence, 0.12)
		assert.Empty(t, op.Entities)
		assert.Empty(t, op.Assignees)
		assert.Nil(t, op.DueDate)
		assert.Nil(t, op.EstimatedHours)
	})
}

func TestProcessDates(t *testing.T) {
	p := newProcessor(t)

	tests := []struct {
		name      string
		text      string
		wantDue   *time.Time
		wantStart *time.Time
	}{
		{
			name:    "today's weekday rolls a full week",
			text:    "create task for wednesday",
			wantDue: ptr(time.Date(2024, 5, 8, 15, 30, 0, 0, time.UTC)),
		},
		{
			name:      "due and start",
			text:      "create task due friday from monday",
			wantDue:   ptr(time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC)),
			wantStart: ptr(time.Date(2024, 5, 6, 15, 30, 0, 0, time.UTC)),
		},
		{
			name:    "evening shift",
			text:    "νέα εργασία αύριο στις 10 το βράδυ",
			wantDue: ptr(time.Date(2024, 5, 2, 22, 0, 0, 0, time.UTC)),
		},
		{
			name: "no date",
			text: "create task fix fence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := p.ProcessAt(tt.text, base)
			assertTime(t, "due", tt.wantDue, op.DueDate)
			assertTime(t, "start", tt.wantStart, op.StartDate)
		})
	}
}

func assertTime(t *testing.T, field string, want, got *time.Time) {
	t.Helper()
	switch {
	case want == nil && got == nil:
	case want == nil || got == nil:
		t.Errorf("%s = %v, want %v", field, got, want)
	case !want.Equal(*got):
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func TestProcessProperties(t *testing.T) {
	p := newProcessor(t)

	inputs := []string{
		"",
		"   ",
		"hello there",
		"task",
		"@",
		"#",
		"@ @ @",
		"create a task in #Garden Care for tomorrow",
		"add task 'Plant watering' for @John Doe urgent priority",
		"schedule task for +Maintenance Project due friday at 3pm",
		"update title to Quarterly Review task={64b1f9a2e1234567890abcde}",
		"δημιούργησε μία εργασία για δευτέρα υψηλή προτεραιότητα",
		"new task &Acme Corp inspection 2 hours",
		"assign @Anna and @Bob to #WO-12 for +Roof &Acme",
		"update /123 set priority low",
		"task={} client={x}",
		"“unterminated quote",
		"31/02 at 25:99",
		"ΦΤΙΑΞΕ ΕΡΓΑΣΙΑ ΑΥΡΙΟ ΣΤΙΣ 9 ΤΟ ΠΡΩΙ",
		"@Alexandros Papadopoulos Konstantinidis Georgiou Nikolaidis",
	}

	for _, in := range inputs {
		op := p.ProcessAt(in, base)

		assert.NotEmpty(t, op.Title, "title for %q", in)
		assert.True(t, op.Intent.IsValid(), "intent for %q", in)
		_, ok := model.ParsePriority(string(op.Priority))
		assert.True(t, ok, "priority for %q", in)
		assert.GreaterOrEqual(t, op.Confidence, 0.0, "confidence for %q", in)
		assert.LessOrEqual(t, op.Confidence, 1.0, "confidence for %q", in)

		n := len([]rune(in))
		for i, a := range op.Entities {
			assert.NotEmpty(t, a.Value, "entity value for %q", in)
			assert.True(t, a.Span.Start >= 0 && a.Span.End <= n && a.Span.Start < a.Span.End, "span %v for %q", a.Span, in)
			for _, b := range op.Entities[i+1:] {
				assert.False(t, a.Span.Overlaps(b.Span), "spans %v and %v overlap for %q", a.Span, b.Span, in)
			}
		}
	}
}

func TestProcessConcurrent(t *testing.T) {
	p := newProcessor(t)
	inputs := []string{
		"create a task in #Garden Care for tomorrow",
		"add task 'Plant watering' for @John Doe urgent priority",
		"schedule task for +Maintenance Project due friday at 3pm",
		"δημιούργησε μία εργασία για δευτέρα υψηλή προτεραιότητα",
	}

	want := make([]model.TaskOperation, len(inputs))
	for i, in := range inputs {
		want[i] = p.ProcessAt(in, base)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				if diff := cmp.Diff(want[i], p.ProcessAt(in, base)); diff != "" {
					errs <- diff
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for diff := range errs {
		t.Errorf("concurrent result differs (-want +got):\n%s", diff)
	}
}
