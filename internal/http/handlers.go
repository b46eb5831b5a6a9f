package http

import (
	"net/http"
	"sync/atomic"

	"expensed/internal/core"
	"expensed/internal/log"
)

// handleExpenses dispatches on method: preflight, list, create, reject.
// CORS headers are already attached by the time this runs.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		NewJSONResponse().Write(w)
	case http.MethodGet:
		s.handleListExpenses(w, r)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		s.logger.WarnContext(r.Context(), "Method rejected",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path)
		MethodNotAllowedError(r.Method).Write(w)
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	items := s.store.ListAll()

	s.logger.DebugContext(r.Context(), "Listed expenses",
		log.FieldOperation, log.OpList,
		log.FieldCount, len(items))

	NewJSONResponse().
		Data(items).
		Count(len(items)).
		Write(w)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		s.logger.WarnContext(r.Context(), "Request body parse failed",
			"error", err,
			log.FieldOperation, log.OpCreate)
		BadRequestError("invalid request body").Write(w)
		return
	}
	if parser.IsEmpty() {
		BadRequestError("request body is empty").Write(w)
		return
	}

	fields := parser.Fields()
	if err := core.ValidateCandidate(fields); err != nil {
		s.logger.WarnContext(r.Context(), "Expense validation failed",
			"error", err,
			log.FieldOperation, log.OpValidate)
		BadRequestError(err.Error()).Write(w)
		return
	}

	// Validation guarantees the field types; re-read the candidate to
	// build the stored record.
	amount := fields["amount"].(float64)
	description := fields["description"].(string)
	category := fields["category"].(string)
	date, err := core.ParseDate(fields["date"].(string))
	if err != nil {
		BadRequestError(core.ErrInvalidDate.Error()).Write(w)
		return
	}

	expense := s.store.Append(amount, description, category, date)
	atomic.AddInt64(&s.appMetrics.totalExpenses, 1)

	s.logger.InfoContext(r.Context(), "Expense created",
		log.FieldExpenseID, expense.ID,
		log.FieldAmount, expense.Amount,
		log.FieldCategory, expense.Category,
		log.FieldOperation, log.OpCreate)

	// Best effort: a publish failure never fails the request.
	if s.publisher != nil {
		if err := s.publisher.PublishExpenseCreated(r.Context(), expense); err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to publish expense created event",
				"error", err,
				log.FieldExpenseID, expense.ID,
				log.FieldOperation, log.OpPublish)
		}
	}

	NewJSONResponse().
		Status(http.StatusCreated).
		Message("expense added successfully").
		Data(expense).
		Write(w)
}
