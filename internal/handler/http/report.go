package http

import (
	"net/http"
	"strconv"

	"github.com/villacare/timekeeper-backend-go/internal/domain/report"
	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetMonthlyReport handles GET /reports/monthly
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseMonthlyReportQuery(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport handles GET /reports/monthly/export
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseMonthlyReportQuery(w, r)
	if !ok {
		return
	}

	buf, filename, err := h.reportService.ExportMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func parseMonthlyReportQuery(w http.ResponseWriter, r *http.Request) (report.MonthlyReportRequest, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return report.MonthlyReportRequest{}, false
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return report.MonthlyReportRequest{}, false
	}

	return report.MonthlyReportRequest{Year: year, Month: month}, true
}
