// Package server is the HTTP layer: it deserializes requests, invokes the
// tracking/report/directory services and maps their error kinds to statuses.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jbarros/go-timeclock-server/authn"
	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/internal/config"
	"github.com/jbarros/go-timeclock-server/internal/db"
	"github.com/jbarros/go-timeclock-server/reports"
	"github.com/jbarros/go-timeclock-server/tracking"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config

	employeeRepo employees.Repo

	auth      *authn.AuthService
	directory *employees.Service
	tracking  *tracking.TrackingService
	reports   *reports.ReportService
}

// New wires the services over the given database connection.
func New(cfg config.Config, gormDB *gorm.DB) (*Server, error) {
	employeeRepo := db.NewEmployeeRepo(gormDB)
	sessionRepo := db.NewSessionRepo(gormDB)

	tokenManager := authn.NewTokenManager(cfg.GetJWTSecret(), cfg.GetTokenExpiry())
	authService, err := authn.NewAuthService(employeeRepo, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create auth service: %w", err)
	}

	directory, err := employees.NewService(employeeRepo)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create directory service: %w", err)
	}

	trackingService, err := tracking.NewTrackingService(tracking.Repos{
		Employees: employeeRepo,
		Sessions:  sessionRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create tracking service: %w", err)
	}

	reportService, err := reports.NewReportService(sessionRepo)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create report service: %w", err)
	}

	s := &Server{
		mux:          http.NewServeMux(),
		config:       cfg,
		env:          cfg.GetEnv(),
		employeeRepo: employeeRepo,
		auth:         authService,
		directory:    directory,
		tracking:     trackingService,
		reports:      reportService,
	}

	// Bootstrap: ensure the seed admin account exists
	if err := s.InitialiseSystem(cfg); err != nil {
		return nil, fmt.Errorf("[Server New] failed to initialise the system: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Debug().Msgf("[%-19s] %s", displayMethod, path)
}
