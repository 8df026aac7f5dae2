// internal/handlers/report_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"solarhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportRequest struct {
	Period string `json:"period" binding:"required"`
	Date   string `json:"date"` // 2006-01-02, defaults to today
}

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			respondBadRequest(c, "invalid date, expected YYYY-MM-DD", err)
			return
		}
		date = parsed
	}

	if req.Period != service.PeriodDaily && req.Period != service.PeriodWeekly {
		respondBadRequest(c, "invalid period", errors.New("period must be 'daily' or 'weekly'"))
		return
	}

	report, err := h.reports.Report(req.Period, date)
	if err != nil {
		respondError(c, "failed to build report", err)
		return
	}
	respondOK(c, http.StatusOK, "report generated", report)
}
