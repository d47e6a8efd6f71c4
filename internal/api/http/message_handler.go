package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"
)

type MessageHandler struct {
	msgSvc service.MessageService
}

func NewMessageHandler(msgSvc service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

type sendMessageRequest struct {
	ToUserID  *int32 `json:"to_user_id,omitempty"`
	RequestID *int32 `json:"request_id,omitempty"`
	Content   string `json:"content"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	var body sendMessageRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	m, err := h.msgSvc.Send(r.Context(), user, body.ToUserID, body.RequestID, body.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	page, pageSize := pagination(r)

	messages, total, err := h.msgSvc.List(r.Context(), user, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: messages, Total: total, Page: page})
}

func (h *MessageHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	if err := h.msgSvc.MarkAsRead(r.Context(), user, int32(id)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	count, err := h.msgSvc.UnreadCount(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int32{"unread": count})
}
