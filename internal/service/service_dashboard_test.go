package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDashboardRepo returns canned rows and remembers the entries cut-off.
type stubDashboardRepo struct {
	tasks   []models.DriverTask
	entries []models.TaskEntry
	drivers []models.Driver
	sites   int

	tasksErr   error
	entriesErr error
	driversErr error
	sitesErr   error

	since atomic.Pointer[time.Time]
}

func (r *stubDashboardRepo) TaskStatuses(ctx context.Context) ([]models.DriverTask, error) {
	return r.tasks, r.tasksErr
}

func (r *stubDashboardRepo) TaskEntriesSince(ctx context.Context, since time.Time) ([]models.TaskEntry, error) {
	r.since.Store(&since)
	return r.entries, r.entriesErr
}

func (r *stubDashboardRepo) DriverZones(ctx context.Context) ([]models.Driver, error) {
	return r.drivers, r.driversErr
}

func (r *stubDashboardRepo) ActiveSitesCount(ctx context.Context) (int, error) {
	return r.sites, r.sitesErr
}

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// ── Summary ──────────────────────────────────────────────────────────────────

func TestDashboardSummary_Aggregates(t *testing.T) {
	repo := &stubDashboardRepo{
		tasks: []models.DriverTask{
			{Status: models.TaskPending},
			{Status: models.TaskPending},
			{Status: models.TaskApproved},
			{Status: "archived"},
		},
		entries: []models.TaskEntry{
			{Liters: 10, CreatedAt: fixedNow.Add(-time.Hour)},
		},
		drivers: []models.Driver{{Zone: "Riyadh"}, {Zone: ""}},
		sites:   17,
	}
	svc := NewDashboardService(repo, logger.Nop())

	got, err := svc.Summary(context.Background(), fixedNow)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.GeneratedAt)
	require.Len(t, got.StatusCounts, 5)
	assert.Equal(t, models.StatusCount{Status: models.TaskPending, Label: "Creation", Count: 2}, got.StatusCounts[0])
	assert.Equal(t, 1, got.StatusCounts[2].Count)
	assert.Equal(t, 0, got.StatusCounts[4].Count)
	assert.InDelta(t, 10, got.Liters.Today, 1e-9)
	assert.Len(t, got.Zones, 2)
	assert.Equal(t, 17, got.ActiveSites)

	since := repo.since.Load()
	require.NotNil(t, since)
	assert.Equal(t, fixedNow.Add(-30*24*time.Hour), *since)
}

func TestDashboardSummary_RepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &stubDashboardRepo{driversErr: repoErr}
	svc := NewDashboardService(repo, logger.Nop())

	_, err := svc.Summary(context.Background(), fixedNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestDashboardSummary_ActiveSitesError(t *testing.T) {
	repoErr := errors.New("sites unavailable")
	repo := &stubDashboardRepo{sites: 3, sitesErr: repoErr}
	svc := NewDashboardService(repo, logger.Nop())

	got, err := svc.Summary(context.Background(), fixedNow)

	require.ErrorIs(t, err, repoErr)
	assert.Zero(t, got.ActiveSites)
}

// ── countStatuses ────────────────────────────────────────────────────────────

func TestCountStatuses_Empty_AllZero(t *testing.T) {
	got := countStatuses(nil)

	require.Len(t, got, 5)
	for _, sc := range got {
		assert.Zero(t, sc.Count, sc.Status)
	}
	assert.Equal(t, []string{"Creation", "Finished by Driver", "Task approved", "Rejected by driver", "Canceled"},
		[]string{got[0].Label, got[1].Label, got[2].Label, got[3].Label, got[4].Label})
}

// ── sumLiters ────────────────────────────────────────────────────────────────

func TestSumLiters_Windows(t *testing.T) {
	entries := []models.TaskEntry{
		// today, submitted
		{Liters: 5, SubmittedAt: ptr(fixedNow.Add(-2 * time.Hour)), CreatedAt: fixedNow.Add(-10 * 24 * time.Hour)},
		// created 3 days ago, never submitted
		{Liters: 7, CreatedAt: fixedNow.Add(-3 * 24 * time.Hour)},
		// exactly on the 7 day boundary
		{Liters: 11, CreatedAt: fixedNow.Add(-7 * 24 * time.Hour)},
		// 20 days ago
		{Liters: 13, CreatedAt: fixedNow.Add(-20 * 24 * time.Hour)},
		// in the future
		{Liters: 100, CreatedAt: fixedNow.Add(time.Hour)},
		// older than the window
		{Liters: 1000, CreatedAt: fixedNow.Add(-31 * 24 * time.Hour)},
		// no timestamp at all
		{Liters: 10000},
	}

	got := sumLiters(entries, fixedNow)

	assert.InDelta(t, 5+100, got.Today, 1e-9, "today is the UTC calendar date")
	assert.InDelta(t, 5+7+11, got.Last7Days, 1e-9)
	assert.InDelta(t, 5+7+11+13, got.Last30Days, 1e-9)
}

func TestSumLiters_SubmittedAtWinsOverCreatedAt(t *testing.T) {
	entries := []models.TaskEntry{
		{Liters: 3, SubmittedAt: ptr(fixedNow.Add(-40 * 24 * time.Hour)), CreatedAt: fixedNow},
	}

	got := sumLiters(entries, fixedNow)

	assert.Equal(t, models.LitersSummary{}, got)
}

func TestSumLiters_TodayUsesUTCDate(t *testing.T) {
	riyadh := time.FixedZone("AST", 3*60*60)
	now := time.Date(2026, 10, 18, 1, 0, 0, 0, riyadh) // 2026-10-17 22:00 UTC
	entries := []models.TaskEntry{
		{Liters: 4, CreatedAt: time.Date(2026, 10, 17, 21, 0, 0, 0, time.UTC)},
		{Liters: 6, CreatedAt: time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC)},
	}

	got := sumLiters(entries, now)

	assert.InDelta(t, 4, got.Today, 1e-9)
	assert.InDelta(t, 10, got.Last7Days, 1e-9)
}

// ── zoneShares ───────────────────────────────────────────────────────────────

func TestZoneShares_TopFiveAsPercent(t *testing.T) {
	var drivers []models.Driver
	add := func(zone string, n int) {
		for range n {
			drivers = append(drivers, models.Driver{Zone: zone})
		}
	}
	add("Riyadh", 4)
	add("Jeddah", 3)
	add("Dammam", 2)
	add("  ", 2)
	add("Mecca", 1)
	add("Abha", 1)
	add("Tabuk", 1) // total 14

	got := zoneShares(drivers)

	require.Len(t, got, 5)
	assert.Equal(t, "Riyadh", got[0].Zone)
	assert.InDelta(t, 4.0/14*100, got[0].Percent, 1e-9)
	assert.Equal(t, "Jeddah", got[1].Zone)
	assert.Equal(t, []string{"Dammam", models.OtherZone}, []string{got[2].Zone, got[3].Zone})
	assert.Equal(t, "Abha", got[4].Zone, "ties ordered by name")
}

func TestZoneShares_NoDrivers(t *testing.T) {
	assert.Empty(t, zoneShares(nil))
}
