package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
	"github.com/transwerk/personal-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
	payrollService payroll.PayrollService
}

func NewPaymentHandler(paymentService payment.PaymentService, payrollService payroll.PayrollService) PaymentHandler {
	return &PaymentHandlerImpl{
		paymentService: paymentService,
		payrollService: payrollService,
	}
}

// MonatsansichtResponse is the payment month view: the raw payment list, one
// payout card per active employee, and the organization totals.
type MonatsansichtResponse struct {
	Zahlungen   []payment.PaymentResponse             `json:"zahlungen"`
	Mitarbeiter []payroll.MitarbeiterMonatsUebersicht `json:"mitarbeiter"`
	Totale      payroll.MonatsTotaleResponse          `json:"totale"`
}

// ListByMonth implements PaymentHandler. monat defaults to the current
// month.
func (h *PaymentHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	monat := r.URL.Query().Get("monat")
	if monat == "" {
		monat = time.Now().Format("2006-01")
	}

	payments, err := h.paymentService.ListByMonth(r.Context(), monat)
	if err != nil {
		slog.Error("ListByMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}
	cards, err := h.payrollService.Monatsuebersicht(r.Context(), monat)
	if err != nil {
		slog.Error("Monatsuebersicht service error", "error", err)
		response.HandleError(w, err)
		return
	}
	totale, err := h.payrollService.MonatsTotale(r.Context(), monat)
	if err != nil {
		slog.Error("MonatsTotale service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, MonatsansichtResponse{
		Zahlungen:   payments,
		Mitarbeiter: cards,
		Totale:      totale,
	})
}

// Create implements PaymentHandler.
func (h *PaymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		slog.Error("CreatePayment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payment created successfully", created)
}

// Delete implements PaymentHandler.
func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}
