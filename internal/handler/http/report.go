package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/report"
	"github.com/transwerk/personal-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	YearlyPaymentsXLSX(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// YearlyPaymentsXLSX implements ReportHandler.
func (h *ReportHandlerImpl) YearlyPaymentsXLSX(w http.ResponseWriter, r *http.Request) {
	jahr := time.Now().Year()
	if raw := r.URL.Query().Get("jahr"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "jahr must be a number", nil)
			return
		}
		jahr = parsed
	}

	data, filename, err := h.reportService.YearlyPaymentsXLSX(r.Context(), jahr)
	if err != nil {
		slog.Error("YearlyPaymentsXLSX service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// PayslipPDF implements ReportHandler.
func (h *ReportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	mitarbeiterID := r.URL.Query().Get("mitarbeiter")
	if mitarbeiterID == "" {
		response.BadRequest(w, "mitarbeiter is required", nil)
		return
	}
	monat := r.URL.Query().Get("monat")
	if monat == "" {
		monat = time.Now().Format("2006-01")
	}

	data, filename, err := h.reportService.PayslipPDF(r.Context(), mitarbeiterID, monat)
	if err != nil {
		slog.Error("PayslipPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
