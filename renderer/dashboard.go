package renderer

import (
	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

// DashboardMarkdown renders the full dashboard report for the month of on.
func DashboardMarkdown(d *wealth.Dashboard, on wealth.Date) string {
	partials := map[string]string{
		"dashboard_networth": "dashboard_networth.md",
		"dashboard_cashflow": "dashboard_cashflow.md",
		"dashboard_freedom":  "dashboard_freedom.md",
		"dashboard_chart":    "dashboard_chart.md",
	}
	data := struct {
		Month string
		*wealth.Dashboard
	}{on.MonthLabel(), d}
	return renderTemplate("dashboard", "dashboard.md", partials, data)
}
