package jobs

import (
	"context"
	"log"
	"time"

	"restomart/internal/models"
	"restomart/internal/services"
)

// ReportBuilder produces daily sales reports
type ReportBuilder interface {
	DailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error)
	PreviousDay(ctx context.Context) (time.Time, error)
}

type DailyReportService struct {
	reports ReportBuilder
	archive services.ReportArchive
}

type DailyReportResult struct {
	Day        string `json:"day"`
	OrderCount int64  `json:"order_count"`
	TotalSales int64  `json:"total_sales"`
	ObjectName string `json:"object_name,omitempty"`
}

// NewDailyReportService creates the end-of-day report job. archive may be nil.
func NewDailyReportService(reports ReportBuilder, archive services.ReportArchive) *DailyReportService {
	return &DailyReportService{
		reports: reports,
		archive: archive,
	}
}

// RunDailyReport builds the report of the previous store day and archives it.
// Building the report also warms the report cache for that day.
func (d *DailyReportService) RunDailyReport(ctx context.Context) (*DailyReportResult, error) {
	startTime := time.Now()
	defer func() {
		log.Printf("Daily sales report job completed in %v", time.Since(startTime))
	}()

	day, err := d.reports.PreviousDay(ctx)
	if err != nil {
		log.Printf("Daily sales report: failed to resolve previous day: %v", err)
		return nil, err
	}

	report, err := d.reports.DailyReport(ctx, day)
	if err != nil {
		log.Printf("Daily sales report: failed to build report: %v", err)
		return nil, err
	}

	result := &DailyReportResult{
		Day:        report.Day,
		OrderCount: report.Summary.OrderCount,
		TotalSales: report.Summary.TotalSales,
	}

	if d.archive != nil {
		objectName, err := d.archive.Archive(ctx, report)
		if err != nil {
			log.Printf("Daily sales report: failed to archive %s: %v", report.Day, err)
			return result, err
		}
		result.ObjectName = objectName
	}

	log.Printf("Daily sales report for %s: Orders=%d, Sales=%d, MenuItems=%d",
		report.Day, report.Summary.OrderCount, report.Summary.TotalSales, len(report.ByMenuItem))

	return result, nil
}

// ScheduledDailyReport is the scheduler entry point; RunDailyReport logs its own errors.
func (d *DailyReportService) ScheduledDailyReport(ctx context.Context) {
	_, _ = d.RunDailyReport(ctx)
}
