package service

import (
	"context"
	"fmt"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/metrics"
	"github.com/saintgo7/web-abada-pamout/internal/schedule"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

type dashboardService struct {
	store *store.Store
	now   func() time.Time
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st, now: func() time.Time { return time.Now().UTC() }}
}

// NewDashboardServiceWithClock fixes the notion of "now" for tests.
func NewDashboardServiceWithClock(st *store.Store, clock func() time.Time) DashboardService {
	return &dashboardService{store: st, now: clock}
}

func (s *dashboardService) snapshot() metrics.Snapshot {
	return metrics.Snapshot{
		Programs:    s.store.Programs(),
		Projects:    s.store.Projects(),
		Resources:   s.store.Resources(),
		Allocations: s.store.Allocations(),
		Milestones:  s.store.Milestones(),
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*metrics.Summary, error) {
	sum := metrics.Summarize(s.snapshot())
	return &sum, nil
}

func (s *dashboardService) Alerts(ctx context.Context, max int) ([]metrics.Alert, error) {
	return metrics.BuildAlerts(s.snapshot(), s.now(), max), nil
}

func (s *dashboardService) ResourceLoads(ctx context.Context) ([]metrics.ResourceLoad, error) {
	return metrics.ResourceLoads(s.store.Resources(), s.store.Allocations()), nil
}

// Board lays out every project as a bar in the requested window. The
// anchor is a YYYY-MM-DD date; empty means today.
func (s *dashboardService) Board(ctx context.Context, zoom schedule.Zoom, anchor string) (*ScheduleBoard, error) {
	at := s.now()
	if anchor != "" {
		parsed, err := time.Parse("2006-01-02", anchor)
		if err != nil {
			return nil, fmt.Errorf("parsing anchor date %q: %w", anchor, err)
		}
		at = parsed
	}

	window := schedule.NewWindow(zoom, at)
	board := &ScheduleBoard{Window: window, Zoom: zoom}

	for _, p := range s.store.Projects() {
		row := ScheduleRow{
			Project: p,
			Visible: schedule.Visible(p.StartDate, p.EndDate, window),
		}
		if row.Visible {
			row.Bar = schedule.Position(p.StartDate, p.EndDate, window)
		}
		for _, m := range s.store.MilestonesByProject(p.ID) {
			if left, ok := schedule.Marker(m.Date, window); ok {
				row.Markers = append(row.Markers, ScheduleMarker{Milestone: m, Left: left})
			}
		}
		board.Rows = append(board.Rows, row)
	}

	return board, nil
}
