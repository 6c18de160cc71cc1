// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bizvet/bizvet/internal/health"
)

// Scheduler manages the cron tasks for the server process.
type Scheduler struct {
	cron    *cron.Cron
	logger  *zap.Logger
	monitor *health.Monitor
}

// NewScheduler creates a new Scheduler around the given health monitor.
func NewScheduler(logger *zap.Logger, monitor *health.Monitor) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if monitor == nil {
		monitor = health.NewMonitor(nil, "", 0)
	}
	return &Scheduler{
		cron:    cron.New(),
		logger:  logger,
		monitor: monitor,
	}
}

// RegisterSummaryJob schedules the periodic health summary log. The schedule
// uses standard five-field cron syntax; descriptors such as @hourly work too.
func (s *Scheduler) RegisterSummaryJob(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.summaryTask); err != nil {
		return fmt.Errorf("register health summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.String("op", "scheduler.Start"),
	)
}

// Stop stops the cron scheduler gracefully, waiting for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped",
		zap.String("op", "scheduler.Stop"),
	)
}

// RunSummaryNow executes the summary task immediately (for manual trigger).
func (s *Scheduler) RunSummaryNow() {
	s.summaryTask()
}

func (s *Scheduler) summaryTask() {
	report := s.monitor.Check()
	s.logger.Info("periodic health summary",
		zap.String("op", "scheduler.summaryTask"),
		zap.String("status", report.Status),
		zap.String("message", report.Message),
		zap.Int("totalErrors", report.Errors.TotalErrors),
		zap.Float64("uptimeSeconds", report.UptimeSeconds),
		zap.Int("goroutines", report.Runtime.Goroutines),
	)
}
