package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteStatus, s.StatusHandler())

	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))

	// Work-session lifecycle (authenticated employee)
	s.RegisterRouteHandler("POST "+RouteWorkCheckIn, ChainMiddleware(s.CheckInHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteWorkCheckOut, ChainMiddleware(s.CheckOutHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteWorkStatus, ChainMiddleware(s.WorkStatusHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteWorkHistory, ChainMiddleware(s.HistoryHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteWorkWeeklySummary, ChainMiddleware(s.PersonalWeeklySummaryHandler(), s.APIMiddleware(s.RequireAuth())...))

	// Admin reporting and directory management
	s.RegisterRouteHandler("GET "+RouteAdminStatus, ChainMiddleware(s.TeamStatusHandler(), s.APIMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("GET "+RouteAdminWeeklySummary, ChainMiddleware(s.TeamWeeklySummaryHandler(), s.APIMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("GET "+RouteAdminRanking, ChainMiddleware(s.RankingHandler(), s.APIMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("GET "+RouteAdminReport, ChainMiddleware(s.ReportHandler(), s.APIMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("GET "+RouteAdminEmployees, ChainMiddleware(s.EmployeesListHandler(), s.APIMiddleware(s.RequireAdmin())...))
	s.RegisterRouteHandler("PUT "+RouteAdminSchedule, ChainMiddleware(s.UpdateScheduleHandler(), s.APIMiddleware(s.RequireAdmin())...))
}
