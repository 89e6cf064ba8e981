package entity

// DashboardPage is one of the admin shell sub pages
type DashboardPage string

const (
	DashboardPageAppointments DashboardPage = "appointments"
	DashboardPageAvailability DashboardPage = "availability"
	DashboardPageExport       DashboardPage = "export"
	DashboardPageSettings     DashboardPage = "settings"
)

// DashboardPages lists the sub pages in menu order
var DashboardPages = []DashboardPage{
	DashboardPageAppointments,
	DashboardPageAvailability,
	DashboardPageExport,
	DashboardPageSettings,
}

// ParseDashboardPage resolves the active page; empty selects appointments
func ParseDashboardPage(s string) (DashboardPage, bool) {
	if s == "" {
		return DashboardPageAppointments, true
	}
	for _, p := range DashboardPages {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// StatCard is a headline number on the dashboard
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}
