// Package http provides the HTTP server and handler implementations.
//
// This file implements a builder for the JSON response envelope shared
// by every endpoint: {success, data, count, message, error}.
package http

import (
	"encoding/json"
	"net/http"
)

// envelope is the wire shape of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponseBuilder provides a fluent API for building envelope
// responses and custom headers.
type JSONResponseBuilder struct {
	statusCode int
	headers    map[string]string
	body       envelope
	hasBody    bool
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

// Header adds a custom header to the response.
func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Data sets the success payload.
func (b *JSONResponseBuilder) Data(v any) *JSONResponseBuilder {
	b.body.Success = true
	b.body.Data = v
	b.hasBody = true
	return b
}

// Count attaches an item count to the envelope.
func (b *JSONResponseBuilder) Count(n int) *JSONResponseBuilder {
	b.body.Count = &n
	b.hasBody = true
	return b
}

// Message attaches a confirmation message to the envelope.
func (b *JSONResponseBuilder) Message(msg string) *JSONResponseBuilder {
	b.body.Success = true
	b.body.Message = msg
	b.hasBody = true
	return b
}

// Error marks the envelope as a failure with the given message.
func (b *JSONResponseBuilder) Error(msg string) *JSONResponseBuilder {
	b.body.Success = false
	b.body.Error = msg
	b.hasBody = true
	return b
}

// Write sends the built response to the http.ResponseWriter. A builder
// with no envelope content writes only status and headers, which is how
// preflight responses stay bodyless.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}

	if !b.hasBody {
		w.WriteHeader(b.statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.statusCode)
	_ = json.NewEncoder(w).Encode(b.body)
}

// BadRequestError creates a 400 failure response.
func BadRequestError(message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(http.StatusBadRequest).
		Error(message)
}

// MethodNotAllowedError creates a 405 failure naming the rejected method.
func MethodNotAllowedError(method string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(http.StatusMethodNotAllowed).
		Header("Allow", "GET, POST, OPTIONS").
		Error("Method " + method + " Not Allowed")
}

// InternalServerError creates a 500 failure response.
func InternalServerError(message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(http.StatusInternalServerError).
		Error(message)
}
