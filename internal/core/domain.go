package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Expense is a single recorded transaction. Date holds the canonical
// RFC3339 representation produced by CanonicalDate.
type Expense struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

var (
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidDescription = errors.New("description must be a non-empty string")
	ErrInvalidCategory    = errors.New("category must be a non-empty string")
	ErrInvalidDate        = errors.New("date must be a valid date")
)

// MissingFieldsError reports every required field absent from a candidate.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// requiredFields lists the keys a candidate must carry.
var requiredFields = []string{"amount", "description", "category", "date"}

// ValidateCandidate decides whether an untrusted field map qualifies as a
// new expense. Checks run in a fixed order and the first failure wins:
// field presence, amount, description, category, date. It never mutates
// the candidate; callers re-read the fields to build the stored record.
func ValidateCandidate(fields map[string]any) error {
	var missing []string
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingFieldsError{Fields: missing}
	}

	amount, ok := fields["amount"].(float64)
	if !ok || amount <= 0 {
		return ErrInvalidAmount
	}

	desc, ok := fields["description"].(string)
	if !ok || strings.TrimSpace(desc) == "" {
		return ErrInvalidDescription
	}

	cat, ok := fields["category"].(string)
	if !ok || strings.TrimSpace(cat) == "" {
		return ErrInvalidCategory
	}

	raw, ok := fields["date"].(string)
	if !ok {
		return ErrInvalidDate
	}
	if _, err := ParseDate(raw); err != nil {
		return ErrInvalidDate
	}

	return nil
}

// dateLayouts are the accepted inbound date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an inbound date string against the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, ErrInvalidDate)
}

// CanonicalDate renders a timestamp in the canonical stored form:
// RFC3339 in UTC.
func CanonicalDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
