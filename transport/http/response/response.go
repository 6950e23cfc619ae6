package response

import (
	"encoding/json"
	"net/http"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data, Error and Message are the three envelopes every endpoint answers with.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// ErrorTracer is the part of a tracing scope Fail needs.
type ErrorTracer interface {
	TraceError(err error)
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps failure.Failure codes onto the status line. Anything else is a 500
// whose detail is logged and replaced by the generic status text.
func WithError(writer http.ResponseWriter, err error) {
	Fail(writer, nil, err, "handle request")
}

// Fail records err on span, logs it under action and writes the error envelope.
// Client errors are logged at warn level.
func Fail(writer http.ResponseWriter, span ErrorTracer, err error, action string) {
	if span != nil {
		span.TraceError(err)
	}

	code := failure.GetCode(err)
	msg := err.Error()
	event := log.Warn()

	if code == http.StatusInternalServerError {
		event = log.Error()
		msg = http.StatusText(code)
	}

	event.Err(err).Int("status", code).Msg("failed to " + action)

	write(writer, code, Error{Error: &msg})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
