package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"github.com/omarshaarawi/ffreport/internal/config"
)

const jobTimeout = 15 * time.Minute

// Tasks are the scheduled jobs. A nil task is not scheduled.
type Tasks struct {
	// Report builds and publishes the weekly report.
	Report func(ctx context.Context) error
	// CloseGames posts the close games before Monday night.
	CloseGames func(ctx context.Context) error
}

type Scheduler struct {
	s        gocron.Scheduler
	location *time.Location
	expr     string
	schedule cron.Schedule
	tasks    Tasks
}

func NewScheduler(cfg config.Schedule, tasks Tasks) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("Failed to load location, using local time", "timezone", cfg.Timezone, "error", err)
		location = time.Local
	}

	schedule, err := cron.ParseStandard(cfg.Report)
	if err != nil {
		return nil, fmt.Errorf("parsing report schedule %q: %w", cfg.Report, err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		location: location,
		expr:     cfg.Report,
		schedule: schedule,
		tasks:    tasks,
	}, nil
}

// NextReport is the first report run after t.
func (s *Scheduler) NextReport(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}

func (s *Scheduler) Start() error {
	if s.tasks.Report != nil {
		_, err := s.s.NewJob(
			gocron.CronJob(s.expr, false),
			gocron.NewTask(s.run, "report", s.tasks.Report),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create report job: %w", err)
		}
		slog.Info("Report job scheduled", "schedule", s.expr, "next_run", s.NextReport(time.Now()))
	}

	// Close Scores - Monday 17:30 local
	if s.tasks.CloseGames != nil {
		_, err := s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(17, 30, 0))),
			gocron.NewTask(s.run, "close games", s.tasks.CloseGames),
		)
		if err != nil {
			return fmt.Errorf("failed to create close games job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) run(name string, task func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	slog.Info("Running scheduled job", "job", name)
	if err := task(ctx); err != nil {
		slog.Error("Scheduled job failed", "job", name, "error", err)
		return
	}
	slog.Info("Scheduled job finished", "job", name, "duration", time.Since(start))
}
