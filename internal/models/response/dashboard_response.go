package response

// FinanceTotals holds summed income and expense over a period
type FinanceTotals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// DashboardStatsResponse aggregates the counters shown on the dashboard
// landing page
type DashboardStatsResponse struct {
	TotalResidents         int64         `json:"total_residents"`
	ActiveResidents        int64         `json:"active_residents"`
	PendingMails           int64         `json:"pending_mails"`
	OpenSecurityReports    int64         `json:"open_security_reports"`
	OpenReports            int64         `json:"open_reports"`
	PublishedAnnouncements int64         `json:"published_announcements"`
	MonthFinance           FinanceTotals `json:"month_finance"`
}
