// Package http provides the HTTP server and handler implementations.
//
// This file implements parsing of untrusted request bodies. The body is
// decoded into a plain field map so the validator can inspect presence
// and types before anything is converted into a domain record.
package http

import (
	"encoding/json"
	"io"
	"net/http"
)

// RequestBodyParser reads a request body once and exposes it as an
// untyped field map. Inbound shape is never trusted.
type RequestBodyParser struct {
	body   []byte
	fields map[string]any
	parsed bool
	err    error
}

// NewRequestBodyParser creates a parser for the given request.
// It reads the body once and stores it for subsequent parsing.
func NewRequestBodyParser(r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{}
	p.body, p.err = io.ReadAll(r.Body)
	return p
}

// Parse decodes the body as a JSON object. A missing body parses
// cleanly into an empty field map; malformed JSON is an error.
func (p *RequestBodyParser) Parse() error {
	if p.parsed {
		return p.err
	}
	p.parsed = true

	if p.err != nil {
		return p.err
	}

	if len(p.body) == 0 {
		p.fields = map[string]any{}
		return nil
	}

	p.fields = make(map[string]any)
	if err := json.Unmarshal(p.body, &p.fields); err != nil {
		p.fields = nil
		p.err = err
		return err
	}
	return nil
}

// Fields returns the decoded field map. Parse must have succeeded.
func (p *RequestBodyParser) Fields() map[string]any {
	return p.fields
}

// IsEmpty reports whether the body was absent or carried no fields.
func (p *RequestBodyParser) IsEmpty() bool {
	return len(p.fields) == 0
}

// GetRaw returns the raw body bytes.
func (p *RequestBodyParser) GetRaw() []byte {
	return p.body
}
