package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCandidate(t *testing.T) {
	valid := map[string]any{
		"amount":      float64(12.5),
		"description": "Lunch",
		"category":    "Food",
		"date":        "2024-01-01",
	}

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr error
	}{
		{
			name:    "valid candidate",
			mutate:  func(m map[string]any) {},
			wantErr: nil,
		},
		{
			name:    "amount zero",
			mutate:  func(m map[string]any) { m["amount"] = float64(0) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount negative",
			mutate:  func(m map[string]any) { m["amount"] = float64(-5) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount just above zero",
			mutate:  func(m map[string]any) { m["amount"] = float64(0.01) },
			wantErr: nil,
		},
		{
			name:    "amount wrong type",
			mutate:  func(m map[string]any) { m["amount"] = "12.5" },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount null",
			mutate:  func(m map[string]any) { m["amount"] = nil },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "description whitespace only",
			mutate:  func(m map[string]any) { m["description"] = "   " },
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "description padded but non-empty",
			mutate:  func(m map[string]any) { m["description"] = " x " },
			wantErr: nil,
		},
		{
			name:    "description wrong type",
			mutate:  func(m map[string]any) { m["description"] = float64(3) },
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "category whitespace only",
			mutate:  func(m map[string]any) { m["category"] = "\t" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "date not parseable",
			mutate:  func(m map[string]any) { m["date"] = "not-a-date" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date wrong type",
			mutate:  func(m map[string]any) { m["date"] = float64(20240101) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date RFC3339",
			mutate:  func(m map[string]any) { m["date"] = "2024-01-01T10:30:00Z" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := make(map[string]any, len(valid))
			for k, v := range valid {
				fields[k] = v
			}
			tt.mutate(fields)

			err := ValidateCandidate(fields)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCandidate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCandidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		wantMsg string
	}{
		{
			name:    "all fields absent",
			fields:  map[string]any{},
			wantMsg: "missing required fields: amount, category, date, description",
		},
		{
			name: "single field absent",
			fields: map[string]any{
				"amount":      float64(1),
				"description": "x",
				"category":    "y",
			},
			wantMsg: "missing required fields: date",
		},
		{
			name: "two fields absent",
			fields: map[string]any{
				"description": "x",
				"date":        "2024-01-01",
			},
			wantMsg: "missing required fields: amount, category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.fields)
			var mf *MissingFieldsError
			if !errors.As(err, &mf) {
				t.Fatalf("expected MissingFieldsError, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateCandidate_PresentButInvalidBeatsLaterChecks(t *testing.T) {
	// Checks run in order: when amount and date are both bad, amount
	// is the one reported.
	fields := map[string]any{
		"amount":      float64(-1),
		"description": "x",
		"category":    "y",
		"date":        "garbage",
	}
	if err := ValidateCandidate(fields); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only",
			input: "2024-01-01",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339",
			input: "2024-06-15T08:30:00Z",
			want:  time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "no zone",
			input: "2024-06-15T08:30:00",
			want:  time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: " 2024-01-01 ",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "tomorrow",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error should wrap ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalDate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got := CanonicalDate(time.Date(2024, 1, 1, 1, 0, 0, 0, loc))
	if got != "2024-01-01T00:00:00Z" {
		t.Errorf("CanonicalDate() = %q, want %q", got, "2024-01-01T00:00:00Z")
	}
}
