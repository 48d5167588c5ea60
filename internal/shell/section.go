// Package shell holds the navigation state of the dashboard shell: which
// section is active, whether the mobile menu is open, and which pane a
// section renders.
package shell

type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionRecords   Section = "records"
	SectionInsights  Section = "insights"
	SectionCharts    Section = "charts"
	SectionGoals     Section = "goals"
	SectionSettings  Section = "settings"
)

const DefaultSection = SectionDashboard

type NavItem struct {
	ID   Section
	Name string
	Icon string
}

// Navigation is the sidebar, in display order.
var Navigation = []NavItem{
	{ID: SectionDashboard, Name: "Dashboard", Icon: "home"},
	{ID: SectionRecords, Name: "Health Records", Icon: "file-text"},
	{ID: SectionInsights, Name: "AI Insights", Icon: "brain"},
	{ID: SectionCharts, Name: "Data Visualization", Icon: "bar-chart-3"},
	{ID: SectionGoals, Name: "Health Goals", Icon: "target"},
	{ID: SectionSettings, Name: "Settings", Icon: "settings"},
}

// Pane is what the main content region shows. Placeholder panes carry only
// a title and a description.
type Pane struct {
	Section     Section
	Title       string
	Description string
	Dashboard   bool
}

var dashboardPane = Pane{Section: SectionDashboard, Title: "Dashboard", Dashboard: true}

var placeholders = map[Section]Pane{
	SectionRecords:  {Section: SectionRecords, Title: "Health Records", Description: "Coming soon - Track your health records here"},
	SectionInsights: {Section: SectionInsights, Title: "AI Insights", Description: "Coming soon - AI-powered health insights"},
	SectionCharts:   {Section: SectionCharts, Title: "Data Visualization", Description: "Coming soon - Interactive health charts"},
	SectionGoals:    {Section: SectionGoals, Title: "Health Goals", Description: "Coming soon - Set and track your health goals"},
	SectionSettings: {Section: SectionSettings, Title: "Settings", Description: "Coming soon - Customize your health tracker"},
}

// PaneFor never fails: anything that is not a placeholder section renders
// the dashboard.
func PaneFor(id string) Pane {
	if p, ok := placeholders[Section(id)]; ok {
		return p
	}
	return dashboardPane
}
