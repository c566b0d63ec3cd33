// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/utils"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/go-chi/chi/v5"
)

const (
	notificationsEvent       = "notifications"
	defaultKeepAliveInterval = 25 * time.Second
)

// streamNotifications serves one driver's notification view as
// Server-Sent Events. Each connection owns a sync client: the current view
// is sent first, then every newer snapshot, until the client disconnects.
func (h *Handler) streamNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	driver := strings.TrimSpace(chi.URLParam(r, "driver"))
	if driver == "" {
		utils.WriteError(w, r, ErrEmptyDriver.Error(), http.StatusBadRequest)
		return
	}

	sync := h.services.SyncFactory.NewSync()
	defer sync.Close()

	// a single slot holding the newest snapshot; publishing is serialized
	// by the sync client, so the send below never blocks
	updates := make(chan models.NotificationView, 1)
	stopObserving := sync.Observe(func(v models.NotificationView) {
		select {
		case <-updates:
		default:
		}
		updates <- v
	})
	defer stopObserving()

	if session := sync.Activate(r.Context(), driver); session == nil {
		utils.WriteError(w, r, ErrSyncNotConfigured.Error(), http.StatusServiceUnavailable)
		return
	}

	h.metrics.StreamsActive.Inc()
	defer h.metrics.StreamsActive.Dec()

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)

	current := sync.View()
	if err := writeViewEvent(w, current); err != nil {
		log.Err(err).Str("func", "*Handler.streamNotifications").Msg("failed to write initial view")
		return
	}
	if err := rc.Flush(); err != nil {
		log.Err(err).Str("func", "*Handler.streamNotifications").Msg("streaming is not supported")
		return
	}
	lastVersion := current.Version

	keepAlive := time.NewTicker(h.keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("func", "*Handler.streamNotifications").Str("driver", driver).Msg("stream closed by client")
			return

		case v := <-updates:
			if v.Version <= lastVersion {
				continue
			}
			lastVersion = v.Version
			if err := writeViewEvent(w, v); err != nil {
				log.Warn().Err(err).Str("func", "*Handler.streamNotifications").Msg("failed to write view")
				return
			}

		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// writeViewEvent writes v as one "notifications" event. The event id is the
// view version.
func writeViewEvent(w io.Writer, v models.NotificationView) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", notificationsEvent, v.Version, data)
	return err
}
