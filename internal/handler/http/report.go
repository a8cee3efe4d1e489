package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/domain/report"
	"github.com/asistpro/attendance-backend-go/internal/handler/http/response"
	"github.com/asistpro/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Lateness(w http.ResponseWriter, r *http.Request)
	Journeys(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Daily implements ReportHandler. Defaults to today when no date is given.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	rows, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Lateness implements ReportHandler.
func (h *reportHandlerImpl) Lateness(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Lateness(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Journeys implements ReportHandler.
func (h *reportHandlerImpl) Journeys(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	var employeeIDs []string
	if ids := r.URL.Query().Get("employeeId"); ids != "" {
		employeeIDs = strings.Split(ids, ",")
	}

	journeys, err := h.reportService.Journeys(r.Context(), start, end, employeeIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, journeys)
}

// Report implements ReportHandler.
func (h *reportHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	summaries, err := h.reportService.Report(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// maxReportRangeDays bounds the journey matrix a single request can ask for.
const maxReportRangeDays = 366

func parseDateRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")

	start, startOK := validator.IsValidDate(startStr)
	end, endOK := validator.IsValidDate(endStr)
	if !startOK || !endOK {
		response.BadRequest(w, "startDate and endDate must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}

	if end.Before(start) {
		response.BadRequest(w, "endDate must not be before startDate", nil)
		return time.Time{}, time.Time{}, false
	}

	if end.Sub(start) > maxReportRangeDays*24*time.Hour {
		response.BadRequest(w, "date range too large", nil)
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
