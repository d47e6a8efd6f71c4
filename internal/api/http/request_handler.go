package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"
)

type RequestHandler struct {
	reqSvc service.RequestService
}

func NewRequestHandler(reqSvc service.RequestService) *RequestHandler {
	return &RequestHandler{reqSvc: reqSvc}
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	var draft domain.RequestDraft
	if err := decodeBody(r, &draft); err != nil {
		respondError(w, err)
		return
	}

	req, err := h.reqSvc.Submit(r.Context(), user.ID, &draft)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	requests, total, err := h.reqSvc.List(r.Context(), user, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: requests, Total: total, Page: page})
}

type requestDetailResponse struct {
	Request   *domain.ServiceRequest `json:"request"`
	Documents []domain.Document      `json:"documents"`
	Payments  []domain.Payment       `json:"payments"`
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	code := mux.Vars(r)["code"]

	req, docs, payments, err := h.reqSvc.Get(r.Context(), user, code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requestDetailResponse{Request: req, Documents: docs, Payments: payments})
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	code := mux.Vars(r)["code"]

	var draft domain.RequestDraft
	if err := decodeBody(r, &draft); err != nil {
		respondError(w, err)
		return
	}

	req, err := h.reqSvc.UpdateDraft(r.Context(), user, code, &draft)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

type transitionRequest struct {
	TargetStatus     domain.RequestStatus `json:"target_status"`
	Reason           string               `json:"reason,omitempty"`
	AdminNotes       string               `json:"admin_notes,omitempty"`
	TotalAmountCents *int32               `json:"total_amount_cents,omitempty"`
}

func (h *RequestHandler) Transition(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	code := mux.Vars(r)["code"]

	var body transitionRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	req, err := h.reqSvc.Transition(r.Context(), user, code, body.TargetStatus, service.TransitionInput{
		Reason:           body.Reason,
		AdminNotes:       body.AdminNotes,
		TotalAmountCents: body.TotalAmountCents,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	summary, err := h.reqSvc.Stats(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
