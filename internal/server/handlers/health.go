package handlers

import (
	"net/http"
)

// HandleHealth is a liveness check. The service has no database; the
// blob store is deliberately not probed here (its credential may be
// absent without the service being unhealthy).
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
