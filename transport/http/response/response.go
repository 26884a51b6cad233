package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rental/shared/constant"
	"rental/shared/failure"
	"rental/shared/logger"
)

// retryAfterSeconds is advertised on 503 answers caused by a temporarily unreachable store.
const retryAfterSeconds = 1

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  *string           `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload under "data".
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its HTTP code. Failures expose their message and per-field validation
// messages; anything else is reported by status text only.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := http.StatusText(code)

	var fail *failure.Failure
	if errors.As(err, &fail) {
		message = fail.Error()
	}

	if code == http.StatusServiceUnavailable {
		writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	}

	write(writer, code, Error{Error: &message, Fields: failure.GetFields(err)})
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
