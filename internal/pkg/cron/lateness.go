package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
)

// LatenessJobs sweeps the directory against today's clock-ins and raises the
// daily late-employees alert.
type LatenessJobs struct {
	employeeRepo    employee.Repository
	punchRepo       punch.Repository
	notificationSvc notification.Service
	cutoffHour      int
	interval        time.Duration

	// now is swapped out in tests to pin the sweep clock.
	now func() time.Time
}

func NewLatenessJobs(
	employeeRepo employee.Repository,
	punchRepo punch.Repository,
	notificationSvc notification.Service,
	cutoffHour int,
	interval time.Duration,
) *LatenessJobs {
	return &LatenessJobs{
		employeeRepo:    employeeRepo,
		punchRepo:       punchRepo,
		notificationSvc: notificationSvc,
		cutoffHour:      cutoffHour,
		interval:        interval,
		now:             time.Now,
	}
}

func (j *LatenessJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("late_arrival_sweep", j.interval, j.CheckLateArrivals)
}

// CheckLateArrivals is the periodic sweep. Before the cutoff hour it does
// nothing. After it, every directory employee without a clock-in today is
// late; a non-empty late set raises the day's alert, and the notification
// service's (kind, date) dedup guarantees re-running the sweep within the
// same day never produces a second one. The roster captured in the alert is
// the snapshot of the first triggering sweep.
func (j *LatenessJobs) CheckLateArrivals(ctx context.Context) error {
	nowLocal := j.now()
	if nowLocal.Hour() < j.cutoffHour {
		return nil
	}

	today := nowLocal.Format(punch.DateLayout)

	events, err := j.punchRepo.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list today's events: %w", err)
	}

	clockedIn := make(map[int]struct{})
	for _, e := range events {
		if e.Type == punch.TypeClockIn {
			clockedIn[e.EmployeeID] = struct{}{}
		}
	}

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	var late []employee.Employee
	for _, emp := range employees {
		if _, ok := clockedIn[emp.ID]; !ok {
			late = append(late, emp)
		}
	}

	if len(late) == 0 {
		return nil
	}

	created, err := j.notificationSvc.CreateLateAlert(ctx, today, late)
	if err != nil {
		return fmt.Errorf("failed to create late alert: %w", err)
	}

	if created {
		slog.Info("Cron: Late arrival alert created", "date", today, "late_count", len(late))
	}
	return nil
}
