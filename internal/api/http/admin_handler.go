package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	users, total, err := h.adminSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: users, Total: total, Page: page})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	var body setActiveRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	if err := h.adminSvc.SetUserActive(r.Context(), int32(id), body.Active); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type setRoleRequest struct {
	Role domain.Role `json:"role"`
}

func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	var body setRoleRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	if err := h.adminSvc.SetUserRole(r.Context(), int32(id), body.Role); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var st domain.ServiceType
	if err := decodeBody(r, &st); err != nil {
		respondError(w, err)
		return
	}

	if err := h.adminSvc.CreateServiceType(r.Context(), &st); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, st)
}

func (h *AdminHandler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	var st domain.ServiceType
	if err := decodeBody(r, &st); err != nil {
		respondError(w, err)
		return
	}
	st.ID = int32(id)

	if err := h.adminSvc.UpdateServiceType(r.Context(), &st); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// ListServiceTypes serves the catalog. Regular users only see active types;
// admins see everything unless filtered.
func (h *AdminHandler) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	activeOnly := user.Role != domain.RoleAdmin || r.URL.Query().Get("active_only") == "true"

	types, err := h.adminSvc.ListServiceTypes(r.Context(), activeOnly)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, types)
}
