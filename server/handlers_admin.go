package server

import (
	"encoding/json"
	"net/http"
)

// TeamStatusHandler returns each employee's latest session.
func (s *Server) TeamStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.reports.TeamStatus()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "team status", entries)
	}
}

// TeamWeeklySummaryHandler charts the whole team's last 7 days.
func (s *Server) TeamWeeklySummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := s.reports.WeeklySummary("", r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "weekly summary", chart)
	}
}

// RankingHandler returns the hours-worked leaderboard. ?days= overrides the
// 7-day window.
func (s *Server) RankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := s.reports.Ranking(r.URL.Query().Get("date"), queryInt(r, "days", 0))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "ranking", ranking)
	}
}

// ReportHandler returns one employee's sessions between
// ?startDate= and ?endDate= (inclusive).
func (s *Server) ReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		views, err := s.reports.Report(q.Get("employeeId"), q.Get("startDate"), q.Get("endDate"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "report", views)
	}
}

// EmployeesListHandler returns the employee directory.
func (s *Server) EmployeesListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.directory.List()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "employees", list)
	}
}

type scheduleRequest struct {
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`
}

// UpdateScheduleHandler sets an employee's contracted working hours.
func (s *Server) UpdateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		employee, err := s.directory.UpdateSchedule(r.PathValue("id"), req.WorkStartTime, req.WorkEndTime)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "schedule updated", employee)
	}
}
