package http

import (
	"net/http"

	"therapy-clinic-api/internal/delivery/http/handler"
	"therapy-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	clientHandler      *handler.ClientHandler
	therapistHandler   *handler.TherapistHandler
	therapyHandler     *handler.TherapyHandler
	appointmentHandler *handler.AppointmentHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loginLimiter       *middleware.RateLimiter
	metrics            *middleware.Metrics
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientHandler,
	therapistHandler *handler.TherapistHandler,
	therapyHandler *handler.TherapyHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loginLimiter *middleware.RateLimiter,
	metrics *middleware.Metrics,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		clientHandler:      clientHandler,
		therapistHandler:   therapistHandler,
		therapyHandler:     therapyHandler,
		appointmentHandler: appointmentHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loginLimiter:       loginLimiter,
		metrics:            metrics,
	}
}

func adminOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequireAdmin(h)
}

func frontDesk(h http.HandlerFunc) http.Handler {
	return middleware.RequireAdminOrStaff(h)
}

// Setup registers every route. CORS wraps the router itself so preflight
// requests are answered even though no route declares OPTIONS.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.metrics.Instrument)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/login", r.loginLimiter.Handler(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/verify", r.authHandler.VerifyToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Clinic routes (any clinic role)
	clinic := api.NewRoute().Subrouter()
	clinic.Use(r.authMiddleware.Authenticate)
	clinic.Use(middleware.RequireStaff)

	// Clients
	clinic.HandleFunc("/clients", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	clinic.Handle("/clients", frontDesk(r.clientHandler.CreateClient)).Methods(http.MethodPost)
	clinic.HandleFunc("/clients/search", r.clientHandler.SearchClients).Methods(http.MethodGet)
	clinic.HandleFunc("/clients/{publicId}", r.clientHandler.GetClient).Methods(http.MethodGet)
	clinic.Handle("/clients/{publicId}", frontDesk(r.clientHandler.UpdateClient)).Methods(http.MethodPut)

	// Therapists (mutations admin)
	clinic.HandleFunc("/therapists", r.therapistHandler.GetAllTherapists).Methods(http.MethodGet)
	clinic.Handle("/therapists", adminOnly(r.therapistHandler.CreateTherapist)).Methods(http.MethodPost)
	clinic.HandleFunc("/therapists/search", r.therapistHandler.SearchTherapists).Methods(http.MethodGet)
	clinic.HandleFunc("/therapists/{publicId}", r.therapistHandler.GetTherapist).Methods(http.MethodGet)
	clinic.Handle("/therapists/{publicId}", adminOnly(r.therapistHandler.UpdateTherapist)).Methods(http.MethodPut)

	// Therapies (mutations admin)
	clinic.HandleFunc("/therapies", r.therapyHandler.GetAllTherapies).Methods(http.MethodGet)
	clinic.Handle("/therapies", adminOnly(r.therapyHandler.CreateTherapy)).Methods(http.MethodPost)
	clinic.HandleFunc("/therapies/active", r.therapyHandler.GetActiveTherapies).Methods(http.MethodGet)
	clinic.HandleFunc("/therapies/{id:[0-9]+}", r.therapyHandler.GetTherapy).Methods(http.MethodGet)
	clinic.Handle("/therapies/{id:[0-9]+}", adminOnly(r.therapyHandler.UpdateTherapy)).Methods(http.MethodPut)
	clinic.Handle("/therapies/{id:[0-9]+}", adminOnly(r.therapyHandler.DeleteTherapy)).Methods(http.MethodDelete)

	// Appointments
	clinic.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	clinic.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	clinic.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	clinic.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	clinic.HandleFunc("/appointments/{id:[0-9]+}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
