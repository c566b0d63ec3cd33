package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/utils"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summary, err := h.services.DashboardService.Summary(r.Context(), h.now())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDashboard").Msg("failed to build dashboard summary")
		status := mapServiceErrorToStatus(err)
		utils.WriteError(w, r, statusMessage(status), status)
		return
	}

	if _, err := utils.WriteJSON(w, summary, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDashboard").Msg("failed to write dashboard summary")
	}
}

func mapServiceErrorToStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusMessage(status int) string {
	if status == statusClientClosedRequest {
		return "client closed request"
	}
	return http.StatusText(status)
}
