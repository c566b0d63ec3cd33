// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationsTable is the remote table holding driver notifications.
const NotificationsTable = "driver_notifications"

// Column names of [NotificationsTable] the sync client relies on.
const (
	NotificationIDField        = "id"
	NotificationDriverField    = "driver_name"
	NotificationCreatedAtField = "created_at"
)

// Notification is a single row of the driver_notifications table.
//
// Apart from the identity fields and CreatedAt the record is opaque: the
// payload is carried as-is and rendered by whoever hosts the view.
type Notification struct {
	ID         int64          `json:"id"`
	DriverName string         `json:"driver_name"`
	CreatedAt  time.Time      `json:"created_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Title returns the "title" payload field or an empty string.
func (n Notification) Title() string {
	return n.payloadString("title")
}

// Body returns the "body" payload field or an empty string.
func (n Notification) Body() string {
	return n.payloadString("body")
}

func (n Notification) payloadString(key string) string {
	if n.Payload == nil {
		return ""
	}
	s, _ := n.Payload[key].(string)
	return s
}
