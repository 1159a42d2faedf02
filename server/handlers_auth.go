package server

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Employee any    `json:"employee"`
}

// StatusHandler is the unauthenticated health check.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.config.GetAppName()+" is running", nil)
	}
}

// LoginHandler exchanges email+password for a bearer token.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		token, employee, err := s.auth.Login(req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, "login successful", loginResponse{
			Token:    token,
			Employee: employee,
		})
	}
}
