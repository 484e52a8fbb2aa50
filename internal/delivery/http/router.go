package http

import (
	"net/http"

	"healthtrack-service/internal/delivery/http/handler"
	"healthtrack-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	physicianHandler   *handler.PhysicianHandler
	auditLogHandler    *handler.AuditLogHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	physicianHandler *handler.PhysicianHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		physicianHandler:   physicianHandler,
		auditLogHandler:    auditLogHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Physician roster
	api.HandleFunc("/physicians", r.physicianHandler.ListPhysicians).Methods(http.MethodGet)

	// Patient intake
	api.HandleFunc("/patients", r.patientHandler.CreateIdentity).Methods(http.MethodPost)
	api.HandleFunc("/patients/register", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetIdentity).Methods(http.MethodGet)
	api.HandleFunc("/patients/{userId}/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/patients/{userId}/appointments", r.appointmentHandler.ListAppointmentsByUser).Methods(http.MethodGet)

	// Appointment lifecycle
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
