package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestBodyParser_JSONObject(t *testing.T) {
	body := `{"amount": 42.5, "description": "test", "category": "Food", "date": "2024-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parser.IsEmpty() {
		t.Error("IsEmpty() = true for populated body")
	}

	fields := parser.Fields()
	if fields["amount"] != 42.5 {
		t.Errorf("amount = %v (%T), want 42.5 (float64)", fields["amount"], fields["amount"])
	}
	if fields["description"] != "test" {
		t.Errorf("description = %v", fields["description"])
	}
	if len(fields) != 4 {
		t.Errorf("field count = %d, want 4", len(fields))
	}
}

func TestRequestBodyParser_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(""))

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !parser.IsEmpty() {
		t.Error("IsEmpty() = false for absent body")
	}
}

func TestRequestBodyParser_EmptyObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader("{}"))

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !parser.IsEmpty() {
		t.Error("IsEmpty() = false for zero-field object")
	}
}

func TestRequestBodyParser_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{"amount":`))

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	// A second Parse reports the same error without re-reading.
	if err := parser.Parse(); err == nil {
		t.Error("repeated Parse() should keep returning the error")
	}
}

func TestRequestBodyParser_PreservesRawBody(t *testing.T) {
	body := `{"a":1}`
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))

	parser := NewRequestBodyParser(req)
	if got := string(parser.GetRaw()); got != body {
		t.Errorf("GetRaw() = %q, want %q", got, body)
	}
}
