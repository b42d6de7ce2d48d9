package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"taskparse/internal/command"
	commandHTTP "taskparse/internal/command/delivery/http"
	"taskparse/internal/command/usecase"
	"taskparse/internal/extraction"
	"taskparse/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type stubUseCase struct {
	err error
}

func (s stubUseCase) Process(context.Context, command.ProcessInput) (command.ProcessOutput, error) {
	return command.ProcessOutput{}, s.err
}

func (s stubUseCase) ProcessBatch(context.Context, command.BatchInput) (command.BatchOutput, error) {
	return command.BatchOutput{}, s.err
}

func (s stubUseCase) Examples(context.Context) (command.ExamplesOutput, error) {
	return command.ExamplesOutput{}, s.err
}

func (s stubUseCase) Ready(context.Context) error {
	return s.err
}

func newRouter(t *testing.T, uc command.UseCase, mws ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := commandHTTP.New(log.NewNop(), uc)
	commandHTTP.RegisterRoutes(r.Group("/api/v1"), h, mws...)
	return r
}

func newPipelineRouter(t *testing.T) *gin.Engine {
	t.Helper()
	p, err := extraction.NewDefault("UTC")
	require.NoError(t, err)
	uc := usecase.New(log.NewNop(), p, nil, usecase.Config{MaxTextLength: 100, MaxBatchSize: 2, BatchConcurrency: 2})
	return newRouter(t, uc)
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestProcess(t *testing.T) {
	r := newPipelineRouter(t)

	w, env := do(r, http.MethodPost, "/api/v1/commands/process",
		`{"text":"add task 'Plant watering' for @John Doe urgent priority","user_id":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.ErrorCode)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "create_task", data["intent"])
	assert.Equal(t, "Plant watering", data["title"])
	assert.Equal(t, "urgent", data["priority"])
	assert.Equal(t, []any{"John Doe"}, data["assignees"])
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "add task 'Plant watering' for @John Doe urgent priority", data["original_text"])
	assert.Equal(t, "u1", data["user_id"])

	for _, key := range []string{"description", "work_order", "project", "client", "due_date", "start_date", "estimated_hours"} {
		v, ok := data[key]
		assert.True(t, ok, "missing key %s", key)
		assert.Nil(t, v, "key %s", key)
	}
}

func TestProcessErrors(t *testing.T) {
	r := newPipelineRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"empty text", `{"text":"   "}`, http.StatusBadRequest, "text cannot be empty"},
		{"missing text", `{}`, http.StatusBadRequest, "text cannot be empty"},
		{"too long", `{"text":"` + strings.Repeat("a", 101) + `"}`, http.StatusBadRequest, "text exceeds maximum length"},
		{"malformed body", `{"text":`, http.StatusBadRequest, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(r, http.MethodPost, "/api/v1/commands/process", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestProcessInternalError(t *testing.T) {
	r := newRouter(t, stubUseCase{err: command.ErrProcessingFailed})

	w, env := do(r, http.MethodPost, "/api/v1/commands/process", `{"text":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 500, env.ErrorCode)
}

func TestProcessBatch(t *testing.T) {
	r := newPipelineRouter(t)

	w, env := do(r, http.MethodPost, "/api/v1/commands/process/batch",
		`{"items":[{"text":"create a task in #Garden Care for tomorrow"},{"text":"update /12345 priority to high"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Results, 2)
	assert.Equal(t, "create_task", data.Results[0]["intent"])
	assert.Equal(t, "update_task", data.Results[1]["intent"])

	w, env = do(r, http.MethodPost, "/api/v1/commands/process/batch",
		`{"items":[{"text":"a"},{"text":"b"},{"text":"c"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "batch exceeds maximum size", env.Message)

	w, env = do(r, http.MethodPost, "/api/v1/commands/process/batch", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "batch cannot be empty", env.Message)
}

func TestExamples(t *testing.T) {
	r := newPipelineRouter(t)

	w, env := do(r, http.MethodGet, "/api/v1/commands/examples", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Examples []command.ExampleSummary `json:"examples"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Examples)
	assert.Equal(t, "create a task in #Garden Care for tomorrow", data.Examples[0].Input)
	assert.Equal(t, "create_task", data.Examples[0].Intent)
	assert.Equal(t, 1, data.Examples[0].Entities)
}

func TestRouteMiddleware(t *testing.T) {
	blocked := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	}
	r := newRouter(t, stubUseCase{}, blocked)

	w, _ := do(r, http.MethodPost, "/api/v1/commands/process", `{"text":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w, _ = do(r, http.MethodGet, "/api/v1/commands/examples", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		path      string
		body      string
		wantLevel zapcore.Level
	}{
		{"empty text", command.ErrEmptyText, "/api/v1/commands/process", `{"text":"x"}`, zapcore.WarnLevel},
		{"too long", command.ErrTextTooLong, "/api/v1/commands/process", `{"text":"x"}`, zapcore.WarnLevel},
		{"oversize batch", command.ErrBatchTooLarge, "/api/v1/commands/process/batch", `{"items":[{"text":"x"}]}`, zapcore.WarnLevel},
		{"processing failed", command.ErrProcessingFailed, "/api/v1/commands/process", `{"text":"x"}`, zapcore.ErrorLevel},
		{"unknown failure", context.DeadlineExceeded, "/api/v1/commands/process/batch", `{"items":[{"text":"x"}]}`, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			gin.SetMode(gin.TestMode)
			r := gin.New()
			commandHTTP.RegisterRoutes(r.Group("/api/v1"), commandHTTP.New(log.NewZap(zap.New(core)), stubUseCase{err: tt.err}))

			do(r, http.MethodPost, tt.path, tt.body)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Contains(t, entries[0].Message, tt.err.Error())
		})
	}
}
