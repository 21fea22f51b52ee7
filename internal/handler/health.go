package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

type healthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *healthHandler {
	return &healthHandler{db: db}
}

// NotFound is the fallback for unmatched paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}

func (h *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	err := h.db.PingContext(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}
