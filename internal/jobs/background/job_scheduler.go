package background

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"restomart/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

const DailyReportJobName = "daily-sales-report"

// JobScheduler runs the service's background jobs
type JobScheduler struct {
	scheduler gocron.Scheduler
	reportSvc *jobs.DailyReportService
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates a scheduler and registers the daily report job.
// reportCron is a five-field cron expression evaluated in loc.
func NewJobScheduler(reportSvc *jobs.DailyReportService, reportCron string, loc *time.Location) (*JobScheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		reportSvc: reportSvc,
		jobs:      make(map[string]gocron.Job),
	}

	if err := js.registerJobs(reportCron); err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// JobNames returns the names of the registered jobs
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (js *JobScheduler) registerJobs(reportCron string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	reportJob, err := js.scheduler.NewJob(
		gocron.CronJob(reportCron, false),
		gocron.NewTask(js.reportSvc.ScheduledDailyReport, context.Background()),
		gocron.WithName(DailyReportJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create %s job: %w", DailyReportJobName, err)
	}
	js.jobs[DailyReportJobName] = reportJob

	log.Printf("Registered background job %s (id=%s, cron=%q)", DailyReportJobName, reportJob.ID(), reportCron)
	return nil
}
