package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-notify/internal/logger"
)

// getServerVersion writes the build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getServerVersion").Msg("failed to write version")
	}
}
