package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-ledger/internal/middleware"
	"github.com/Dan9191/finance-ledger/internal/models"
	"github.com/Dan9191/finance-ledger/internal/service"
)

// Pinger reports store reachability for the health check
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	svc    *service.Service
	health Pinger
	log    *logrus.Logger
}

func NewHandler(svc *service.Service, health Pinger, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, health: health, log: log}
}

// Routes builds the API router
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(h.log))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", h.Login).Methods(http.MethodPost)

	// incomes and outgoings share one set of handlers keyed by kind
	for _, kind := range []models.Kind{models.KindIncome, models.KindOutgoing} {
		base := "/api/" + string(kind) + "s"
		r.HandleFunc(base, h.AddTransaction(kind)).Methods(http.MethodPost)
		r.HandleFunc(base+"/{profile_id:[0-9]+}", h.ListTransactions(kind)).Methods(http.MethodGet)
		r.HandleFunc(base+"/{id:[0-9]+}", h.DeleteTransaction(kind)).Methods(http.MethodDelete)
	}
	return r
}

// Health reports whether the store answers
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.log.WithError(err).Error("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
