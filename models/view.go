// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationView is the read-only state exposed to whoever renders a
// driver's notification list. A fresh snapshot is published after every
// state transition of the sync client.
type NotificationView struct {
	// DriverName is the identity of the session that produced the view, or
	// empty when no session is active.
	DriverName string `json:"driver_name"`
	// Notifications is ordered newest first.
	Notifications []Notification `json:"notifications"`
	// Loading is true while the most recently issued fetch is in flight.
	Loading bool `json:"loading"`
	// Degraded is true while the change subscription could not be
	// established and is being retried.
	Degraded bool `json:"degraded"`
	// Version increases by one with every published snapshot.
	Version uint64 `json:"version"`
}

// SessionState is the lifecycle state of one sync session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionActivating
	SessionActive
	SessionRefreshing
	SessionDeactivated
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionActivating:
		return "activating"
	case SessionActive:
		return "active"
	case SessionRefreshing:
		return "refreshing"
	case SessionDeactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}
