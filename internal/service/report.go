// internal/service/report.go
package service

import (
	"fmt"
	"time"

	"solarhub/internal/db"
	"solarhub/internal/logger"
)

// Report periods
const (
	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
)

// QuotationReport summarises the quotations created in a period.
type QuotationReport struct {
	Period             string         `json:"period"`
	Start              time.Time      `json:"start"`
	End                time.Time      `json:"end"` // exclusive
	Count              int            `json:"count"`
	TotalSystemSize    float64        `json:"totalSystemSize"`    // kW
	TotalLoad          int            `json:"totalLoad"`          // W
	TotalEstimatedCost int64          `json:"totalEstimatedCost"` // PKR
	TotalAmount        int64          `json:"totalAmount"`        // PKR
	ByStatus           map[string]int `json:"byStatus"`
}

type ReportService struct {
	repo db.IQuotationRepository
}

func NewReportService(repo db.IQuotationRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Report dispatches on period ("daily" or "weekly") for the period containing date.
func (s *ReportService) Report(period string, date time.Time) (*QuotationReport, error) {
	switch period {
	case PeriodDaily:
		return s.GetDailyReport(date)
	case PeriodWeekly:
		return s.GetWeeklyReport(date)
	default:
		return nil, fmt.Errorf("invalid period %q, must be 'daily' or 'weekly'", period)
	}
}

func (s *ReportService) GetDailyReport(date time.Time) (*QuotationReport, error) {
	startTime := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return s.getReport(PeriodDaily, startTime, startTime.AddDate(0, 0, 1))
}

// GetWeeklyReport covers Monday 00:00 up to the next Monday 00:00 of date's week.
func (s *ReportService) GetWeeklyReport(date time.Time) (*QuotationReport, error) {
	offset := int(date.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := date.AddDate(0, 0, -offset+1)
	startTime := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, date.Location())
	return s.getReport(PeriodWeekly, startTime, startTime.AddDate(0, 0, 7))
}

func (s *ReportService) getReport(period string, startTime, endTime time.Time) (*QuotationReport, error) {
	quotations, err := s.repo.ListBetween(startTime, endTime)
	if err != nil {
		logger.Error("Build %s report failed: %v", period, err)
		return nil, err
	}

	report := &QuotationReport{
		Period:   period,
		Start:    startTime,
		End:      endTime,
		ByStatus: make(map[string]int),
	}
	for _, q := range quotations {
		report.Count++
		report.TotalSystemSize += q.SystemSize
		report.TotalLoad += q.TotalLoad
		report.TotalEstimatedCost += q.EstimatedCost
		report.TotalAmount += q.Amount
		report.ByStatus[q.Status]++
	}
	return report, nil
}
