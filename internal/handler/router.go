package handler

import (
	"net/http"

	"github.com/segyhp/travel-crm/internal/config"
	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Records   *RecordHandler
	Dashboard *DashboardHandler
	Documents *DocumentHandler
	Health    *HealthHandler
}

func NewRouter(h Handlers, seed config.SeedConfig, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware(logger))
	router.Use(response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", h.Health.Health).Methods("GET")
	router.HandleFunc("/health/ready", h.Health.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(response.JSONMiddleware)
	api.Use(BasicAuth(seed, logger))

	api.HandleFunc("/dashboard", h.Dashboard.Summary).Methods("GET")
	api.HandleFunc("/reminders", h.Dashboard.Reminders).Methods("GET")

	api.HandleFunc("/customers/{id}/documents", h.Documents.List).Methods("GET")
	api.HandleFunc("/customers/{id}/documents", h.Documents.Upload).Methods("POST")
	api.HandleFunc("/customers/{id}/documents/{name}", h.Documents.Download).Methods("GET")
	api.HandleFunc("/customers/{id}/documents/{name}", h.Documents.Delete).Methods("DELETE")

	h.Records.Register(api)

	// Preflight requests for any path, answered by the CORS middleware
	router.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	return router
}
