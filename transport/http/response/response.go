package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tasker/shared/constant"
	"tasker/shared/failure"
	"tasker/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}

// EventStream writes server-sent events. Each payload is serialized to JSON
// and framed as a single "data:" line, flushed immediately so clients see
// fragments as they are produced.
type EventStream struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// NewEventStream prepares the response for server-sent events and commits the
// status code. It fails when the underlying writer cannot flush, which means
// streaming is not possible on this connection.
func NewEventStream(writer http.ResponseWriter) (*EventStream, error) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		return nil, failure.InternalError(fmt.Errorf("response writer does not support streaming")) //nolint:wrapcheck
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	writer.Header().Set(constant.RequestHeaderCacheControl, "no-cache")
	writer.Header().Set("Connection", "keep-alive")
	writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &EventStream{writer: writer, flusher: flusher}, nil
}

// Send writes one event frame and flushes it.
func (s *EventStream) Send(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	if _, err = fmt.Fprintf(s.writer, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	s.flusher.Flush()

	return nil
}
