package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/session"
)

// NewRouter assembles the portal's HTTP surface. Everything under /api/v1
// except login, registration and signed document downloads sits behind the
// session middleware.
func NewRouter(
	sessions *session.Manager,
	cookieName string,
	authHandler *AuthHandler,
	requestHandler *RequestHandler,
	documentHandler *DocumentHandler,
	paymentHandler *PaymentHandler,
	messageHandler *MessageHandler,
	adminHandler *AdminHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/documents/download", documentHandler.Download).Methods(http.MethodGet)
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Authenticated routes (any role)
	authed := api.NewRoute().Subrouter()
	authed.Use(Authenticate(sessions, cookieName))

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	authed.HandleFunc("/requests", requestHandler.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/requests", requestHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/requests/stats", requestHandler.Stats).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{code}", requestHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{code}", requestHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/requests/{code}/transition", requestHandler.Transition).Methods(http.MethodPost)

	authed.HandleFunc("/requests/{code}/documents", documentHandler.Upload).Methods(http.MethodPost)
	authed.HandleFunc("/documents/{id}/url", documentHandler.DownloadURL).Methods(http.MethodGet)

	authed.HandleFunc("/payments", paymentHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{paymentID}/pay", paymentHandler.Pay).Methods(http.MethodPost)

	authed.HandleFunc("/messages", messageHandler.Send).Methods(http.MethodPost)
	authed.HandleFunc("/messages", messageHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/messages/unread", messageHandler.UnreadCount).Methods(http.MethodGet)
	authed.HandleFunc("/messages/{id}/read", messageHandler.MarkAsRead).Methods(http.MethodPost)

	authed.HandleFunc("/service-types", adminHandler.ListServiceTypes).Methods(http.MethodGet)

	// Admin-only routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(Authenticate(sessions, cookieName))
	admin.Use(RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/active", adminHandler.SetUserActive).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/role", adminHandler.SetUserRole).Methods(http.MethodPost)
	admin.HandleFunc("/service-types", adminHandler.CreateServiceType).Methods(http.MethodPost)
	admin.HandleFunc("/service-types/{id}", adminHandler.UpdateServiceType).Methods(http.MethodPut)
	admin.HandleFunc("/requests/{code}/invoices", paymentHandler.CreateInvoice).Methods(http.MethodPost)
	admin.HandleFunc("/payments/{paymentID}/cancel", paymentHandler.Cancel).Methods(http.MethodPost)
	admin.HandleFunc("/documents/{id}/review", documentHandler.Review).Methods(http.MethodPost)

	return r
}
