package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type checkoutRequest struct {
	ReasonID string `json:"reason_id"`
	Details  string `json:"details"`
}

// CheckInHandler opens a work session for the authenticated employee.
func (s *Server) CheckInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.tracking.CheckIn(identityFrom(r).EmployeeID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, "check-in successful", s.reports.View(session))
	}
}

// CheckOutHandler closes the authenticated employee's open session.
func (s *Server) CheckOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := s.tracking.CheckOut(identityFrom(r).EmployeeID, req.ReasonID, req.Details)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "check-out successful", s.reports.View(session))
	}
}

// WorkStatusHandler reports whether the caller has an open session.
func (s *Server) WorkStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.tracking.Status(identityFrom(r).EmployeeID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if session == nil {
			writeJSON(w, http.StatusOK, "no open shift", nil)
			return
		}
		writeJSON(w, http.StatusOK, "shift open", s.reports.View(session))
	}
}

type historyResponse struct {
	Records any `json:"records"`
	Total   int `json:"total"`
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
}

// HistoryHandler returns the caller's paginated session history,
// optionally filtered to a single day via ?date=YYYY-MM-DD.
func (s *Server) HistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := queryInt(r, "offset", 0)
		limit := queryInt(r, "limit", 20)

		views, total, err := s.reports.History(identityFrom(r).EmployeeID, r.URL.Query().Get("date"), offset, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "history", historyResponse{
			Records: views,
			Total:   total,
			Offset:  offset,
			Limit:   limit,
		})
	}
}

// PersonalWeeklySummaryHandler charts the caller's last 7 days.
func (s *Server) PersonalWeeklySummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := s.reports.WeeklySummary(identityFrom(r).EmployeeID, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "weekly summary", chart)
	}
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
