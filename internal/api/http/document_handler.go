package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"
)

type DocumentHandler struct {
	docSvc      service.DocumentService
	maxUploadMB int64
}

func NewDocumentHandler(docSvc service.DocumentService, maxUploadMB int64) *DocumentHandler {
	return &DocumentHandler{docSvc: docSvc, maxUploadMB: maxUploadMB}
}

// Upload accepts a multipart form with a "file" part and a "document_type"
// field, attached to the request in the path.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	code := mux.Vars(r)["code"]

	maxBytes := h.maxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}
	defer file.Close()

	doc, err := h.docSvc.Upload(
		r.Context(),
		user,
		code,
		header.Filename,
		header.Header.Get("Content-Type"),
		r.FormValue("document_type"),
		header.Size,
		file,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

type reviewRequest struct {
	Verdict domain.DocumentStatus `json:"verdict"`
}

func (h *DocumentHandler) Review(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	var body reviewRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	doc, err := h.docSvc.Review(r.Context(), user, int32(id), body.Verdict)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	url, err := h.docSvc.DownloadURL(r.Context(), user, int32(id))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Download streams a file for a valid signed token. It is the one route that
// does not sit behind the session middleware.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, domain.ErrUnauthorized)
		return
	}

	doc, rc, err := h.docSvc.Open(r.Context(), token)
	if err != nil {
		respondError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", doc.FileType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	w.Header().Set("Content-Length", strconv.FormatInt(doc.FileSize, 10))
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are gone at this point; nothing to do but log upstream.
		return
	}
}
