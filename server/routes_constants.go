package server

const (
	RouteStatus = "/status"

	RouteAuthLogin = "/auth/login"

	RouteWorkCheckIn       = "/work/checkin"
	RouteWorkCheckOut      = "/work/checkout"
	RouteWorkStatus        = "/work/status"
	RouteWorkHistory       = "/work/history"
	RouteWorkWeeklySummary = "/work/summary/weekly"

	RouteAdminStatus        = "/admin/status"
	RouteAdminWeeklySummary = "/admin/summary/weekly"
	RouteAdminRanking       = "/admin/ranking"
	RouteAdminReport        = "/admin/report"
	RouteAdminEmployees     = "/admin/employees"
	RouteAdminSchedule      = "/admin/employees/{id}/schedule"
)
