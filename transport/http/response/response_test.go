package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"petcare/shared/failure"
	"petcare/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]any{"id": "a1", "status": "scheduled"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"a1","status":"scheduled"}}`, recorder.Body.String())
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithMessage(recorder, http.StatusOK, "appointment cancelled")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"appointment cancelled"}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "conflict", err: failure.Conflict("time slot is full"), code: http.StatusConflict, expected: `{"error":"time slot is full"}`},
		{name: "not found", err: failure.NotFound("appointment not found"), code: http.StatusNotFound, expected: `{"error":"appointment not found"}`},
		{name: "internal detail hidden", err: errors.New("pq: connection refused"), code: http.StatusInternalServerError, expected: `{"error":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.expected, recorder.Body.String())
		})
	}
}

func TestCannedResponses(t *testing.T) {
	tests := []struct {
		name  string
		write func(http.ResponseWriter)
		code  int
		body  string
	}{
		{name: "rate limited", write: response.WithRequestLimitExceeded, code: http.StatusTooManyRequests, body: `{"message":"REQUEST LIMIT EXCEEDED"}`},
		{name: "draining", write: response.WithPreparingShutdown, code: http.StatusServiceUnavailable, body: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{name: "unhealthy", write: response.WithUnhealthy, code: http.StatusServiceUnavailable, body: `{"message":"SERVER UNHEALTHY"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			tt.write(recorder)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

type recordingTracer struct {
	errs []error
}

func (r *recordingTracer) TraceError(err error) {
	r.errs = append(r.errs, err)
}

func TestFail(t *testing.T) {
	recorder := httptest.NewRecorder()
	tracer := &recordingTracer{}
	err := failure.Forbidden("only the assigned walker can track this walk")

	response.Fail(recorder, tracer, err, "start tracking")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"error":"only the assigned walker can track this walk"}`, recorder.Body.String())
	assert.Equal(t, []error{err}, tracer.errs)
}
