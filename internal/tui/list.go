package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fleet-notify/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const (
	maxTitleWidth = 48
	maxBodyWidth  = 60
	timeLayout    = "02 Jan 15:04"
)

type listModel struct {
	driver     string
	view       models.NotificationView
	idx        int
	spinning   bool
	spinner    spinner.Model
	configured bool
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, configured: true}
}

// apply replaces the rendered snapshot. Snapshots that are not newer than the
// current one are ignored. It reports whether the spinner has to be started.
func (m *listModel) apply(view models.NotificationView) (startSpinner bool) {
	if view.Version != 0 && view.Version <= m.view.Version {
		return false
	}
	m.view = view
	if m.idx >= len(view.Notifications) {
		m.idx = max(len(view.Notifications)-1, 0)
	}
	if view.Loading && !m.spinning {
		m.spinning = true
		return true
	}
	return false
}

func (m *listModel) clear() {
	version := m.view.Version
	*m = newListModel()
	// keep ordering against snapshots still in flight
	m.view.Version = version
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.view.Notifications)-1 {
		m.idx++
	}
}

func (m listModel) View() string {
	var b strings.Builder

	header := "Driver: " + m.driver
	if m.view.Loading {
		header += "  " + m.spinner.View() + " loading"
	}
	b.WriteString(header)
	b.WriteString("\n")

	if m.view.Degraded {
		b.WriteString(degradedStyle.Render("! live updates unavailable, retrying"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case !m.configured:
		b.WriteString("Notification sync is not configured\n")
	case len(m.view.Notifications) == 0 && m.view.Loading:
		b.WriteString("Loading...\n")
	case len(m.view.Notifications) == 0:
		b.WriteString("No notifications\n")
	default:
		for i, n := range m.view.Notifications {
			cursor := "  "
			if i == m.idx {
				cursor = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, formatTime(n.CreatedAt), fitText(notificationTitle(n), maxTitleWidth)))
			if i == m.idx {
				if body := n.Body(); body != "" {
					b.WriteString("    ")
					b.WriteString(helpStyle.Render(fitText(body, maxBodyWidth)))
					b.WriteString("\n")
				}
			}
		}
	}

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ r: refresh │ l: log out │ q: quit")
}

func notificationTitle(n models.Notification) string {
	if t := n.Title(); t != "" {
		return t
	}
	return fmt.Sprintf("Notification #%d", n.ID)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Local().Format(timeLayout)
}
