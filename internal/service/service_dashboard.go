package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/models"
	"golang.org/x/sync/errgroup"
)

const (
	litersWindow    = 30 * 24 * time.Hour
	shortWindow     = 7 * 24 * time.Hour
	zoneChartLength = 5
)

// statusLabels fixes the order and captions of the status chart.
var statusLabels = []struct{ status, label string }{
	{models.TaskPending, "Creation"},
	{models.TaskCompleted, "Finished by Driver"},
	{models.TaskApproved, "Task approved"},
	{models.TaskRejected, "Rejected by driver"},
	{models.TaskCanceled, "Canceled"},
}

type dashboardService struct {
	repo   store.DashboardRepository
	logger *logger.Logger
}

func NewDashboardService(repo store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

// Summary loads tasks, recent refills, drivers and the active sites count
// concurrently and aggregates them relative to now.
func (s *dashboardService) Summary(ctx context.Context, now time.Time) (models.DashboardSummary, error) {
	var (
		tasks   []models.DriverTask
		entries []models.TaskEntry
		drivers []models.Driver
		sites   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = s.repo.TaskStatuses(gctx)
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.repo.TaskEntriesSince(gctx, now.Add(-litersWindow))
		return err
	})
	g.Go(func() (err error) {
		drivers, err = s.repo.DriverZones(gctx)
		return err
	})
	g.Go(func() (err error) {
		sites, err = s.repo.ActiveSitesCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "dashboardService.Summary").Msg("failed to load dashboard rows")
		return models.DashboardSummary{}, err
	}

	return models.DashboardSummary{
		StatusCounts: countStatuses(tasks),
		Liters:       sumLiters(entries, now),
		Zones:        zoneShares(drivers),
		ActiveSites:  sites,
		GeneratedAt:  now,
	}, nil
}

func countStatuses(tasks []models.DriverTask) []models.StatusCount {
	counts := make(map[string]int, len(statusLabels))
	for _, t := range tasks {
		counts[t.Status]++
	}

	out := make([]models.StatusCount, 0, len(statusLabels))
	for _, sl := range statusLabels {
		out = append(out, models.StatusCount{Status: sl.status, Label: sl.label, Count: counts[sl.status]})
	}
	return out
}

// sumLiters accounts each entry at its submission time (creation time when
// never submitted). Both windows end at now inclusive; "today" is the UTC
// calendar date of now.
func sumLiters(entries []models.TaskEntry, now time.Time) models.LitersSummary {
	var sum models.LitersSummary

	start30 := now.Add(-litersWindow)
	start7 := now.Add(-shortWindow)
	today := now.UTC().Format(time.DateOnly)

	for _, e := range entries {
		when := e.When()
		if when.IsZero() {
			continue
		}
		if !when.Before(start30) && !when.After(now) {
			sum.Last30Days += e.Liters
		}
		if !when.Before(start7) && !when.After(now) {
			sum.Last7Days += e.Liters
		}
		if when.UTC().Format(time.DateOnly) == today {
			sum.Today += e.Liters
		}
	}
	return sum
}

// zoneShares buckets drivers by zone, blank zones into [models.OtherZone],
// and returns the largest buckets as a percentage of all drivers.
func zoneShares(drivers []models.Driver) []models.ZoneShare {
	counts := make(map[string]int)
	for _, d := range drivers {
		zone := strings.TrimSpace(d.Zone)
		if zone == "" {
			zone = models.OtherZone
		}
		counts[zone]++
	}

	shares := make([]models.ZoneShare, 0, len(counts))
	for zone, n := range counts {
		shares = append(shares, models.ZoneShare{
			Zone:    zone,
			Count:   n,
			Percent: float64(n) / float64(len(drivers)) * 100,
		})
	}
	slices.SortFunc(shares, func(a, b models.ZoneShare) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Zone, b.Zone)
	})

	if len(shares) > zoneChartLength {
		shares = shares[:zoneChartLength]
	}
	return shares
}
