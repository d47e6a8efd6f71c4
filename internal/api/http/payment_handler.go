package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"
)

type PaymentHandler struct {
	paySvc service.PaymentService
}

func NewPaymentHandler(paySvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paySvc: paySvc}
}

type createInvoiceRequest struct {
	AmountCents int32  `json:"amount_cents"`
	DueOn       string `json:"due_on,omitempty"` // YYYY-MM-DD
}

func (h *PaymentHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	code := mux.Vars(r)["code"]

	var body createInvoiceRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	var dueOn time.Time
	if body.DueOn != "" {
		var err error
		dueOn, err = time.Parse("2006-01-02", body.DueOn)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
	}

	p, err := h.paySvc.CreateInvoice(r.Context(), user, code, body.AmountCents, dueOn)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

type payRequest struct {
	Method string `json:"payment_method"`
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	paymentID := mux.Vars(r)["paymentID"]

	var body payRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	p, err := h.paySvc.Pay(r.Context(), user, paymentID, body.Method)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	paymentID := mux.Vars(r)["paymentID"]

	p, err := h.paySvc.Cancel(r.Context(), user, paymentID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	payments, total, err := h.paySvc.List(r.Context(), user, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: payments, Total: total, Page: page})
}
