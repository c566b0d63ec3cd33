package models

import "time"

// Task statuses as stored in driver_tasks.status.
const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
	TaskApproved  = "approved"
	TaskRejected  = "rejected"
	TaskCanceled  = "canceled"
)

// OtherZone is the bucket for drivers without a zone.
const OtherZone = "Other"

// Sites counted as active: on air or with works in progress, in the
// regions the fleet serves.
const (
	SiteStatusOnAir      = "ON-AIR"
	SiteStatusInProgress = "in progress"
)

var ActiveSiteRegions = []string{"Central", "East"}

// DriverTask is the projection of driver_tasks used by the dashboard.
type DriverTask struct {
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskEntry is one refill reported by a driver (driver_task_entries).
type TaskEntry struct {
	Liters      float64    `json:"liters"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// When returns the time the refill is accounted at: SubmittedAt when set,
// CreatedAt otherwise.
func (e TaskEntry) When() time.Time {
	if e.SubmittedAt != nil && !e.SubmittedAt.IsZero() {
		return *e.SubmittedAt
	}
	return e.CreatedAt
}

// Driver is the projection of drivers used by the zone distribution.
type Driver struct {
	Zone string `json:"zone"`
}

// StatusCount is one slice of the task status chart.
type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// LitersSummary holds refilled liters over the dashboard windows.
type LitersSummary struct {
	Today      float64 `json:"today"`
	Last7Days  float64 `json:"last_7_days"`
	Last30Days float64 `json:"last_30_days"`
}

// ZoneShare is one slice of the zone distribution chart.
type ZoneShare struct {
	Zone    string  `json:"zone"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DashboardSummary is everything the dashboard charts render.
type DashboardSummary struct {
	StatusCounts []StatusCount `json:"status_counts"`
	Liters       LitersSummary `json:"liters"`
	Zones        []ZoneShare   `json:"zones"`
	ActiveSites  int           `json:"active_sites"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
