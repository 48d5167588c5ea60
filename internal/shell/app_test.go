package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_DefaultsToDashboard(t *testing.T) {
	app := NewApp()
	assert.Equal(t, "dashboard", app.Active())
	assert.False(t, app.MobileOpen())
	assert.True(t, app.Pane().Dashboard)
}

func TestPaneFor_Titles(t *testing.T) {
	tests := []struct {
		id    string
		title string
		desc  string
	}{
		{"dashboard", "Dashboard", ""},
		{"records", "Health Records", "Coming soon - Track your health records here"},
		{"insights", "AI Insights", "Coming soon - AI-powered health insights"},
		{"charts", "Data Visualization", "Coming soon - Interactive health charts"},
		{"goals", "Health Goals", "Coming soon - Set and track your health goals"},
		{"settings", "Settings", "Coming soon - Customize your health tracker"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := PaneFor(tt.id)
			assert.Equal(t, tt.title, p.Title)
			assert.Equal(t, tt.desc, p.Description)
			assert.Equal(t, tt.id == "dashboard", p.Dashboard)
		})
	}
}

func TestPaneFor_UnknownFallsBackToDashboard(t *testing.T) {
	for _, id := range []string{"", "reports", "DASHBOARD", "records "} {
		p := PaneFor(id)
		assert.True(t, p.Dashboard, "id %q", id)
		assert.Equal(t, SectionDashboard, p.Section)
	}
}

func TestNavigation_TitlesMatchPanes(t *testing.T) {
	require.Len(t, Navigation, 6)
	for _, item := range Navigation {
		assert.Equal(t, item.Name, PaneFor(string(item.ID)).Title)
	}
}

func TestApp_NavMarksActive(t *testing.T) {
	app := NewApp()
	app.SetActive("goals")

	var active []Section
	for _, e := range app.Nav() {
		if e.Active {
			active = append(active, e.ID)
		}
	}
	assert.Equal(t, []Section{SectionGoals}, active)

	app.SetActive("nope")
	for _, e := range app.Nav() {
		assert.False(t, e.Active)
	}
	assert.True(t, app.Pane().Dashboard)
}

func TestApp_NavigateClosesMenu(t *testing.T) {
	app := NewApp()
	app.ToggleMenu()
	require.True(t, app.MobileOpen())

	app.Navigate("charts")

	assert.Equal(t, "charts", app.Active())
	assert.False(t, app.MobileOpen())
}

func TestApp_MenuToggles(t *testing.T) {
	app := NewApp()
	app.ToggleMenu()
	assert.True(t, app.MobileOpen())
	app.ToggleMenu()
	assert.False(t, app.MobileOpen())

	app.ToggleMenu()
	app.CloseMenu()
	assert.False(t, app.MobileOpen())
	assert.Equal(t, "dashboard", app.Active())
}

func TestRestore(t *testing.T) {
	app := Restore("settings", true)
	assert.Equal(t, "settings", app.Active())
	assert.True(t, app.MobileOpen())

	assert.Equal(t, "dashboard", Restore("", false).Active())
}
