// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// ChangeType is the kind of row change reported by the change feed.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
	// ChangeAny subscribes to every change type.
	ChangeAny ChangeType = "*"
	// ChangeResync is emitted by the feed itself after a lost connection was
	// re-established; subscribers may have missed changes in between.
	ChangeResync ChangeType = "RESYNC"
)

// ParseChangeType normalises a trigger operation name (TG_OP) into a ChangeType.
func ParseChangeType(s string) (ChangeType, bool) {
	switch ChangeType(strings.ToUpper(strings.TrimSpace(s))) {
	case ChangeInsert:
		return ChangeInsert, true
	case ChangeUpdate:
		return ChangeUpdate, true
	case ChangeDelete:
		return ChangeDelete, true
	case ChangeAny:
		return ChangeAny, true
	case ChangeResync:
		return ChangeResync, true
	}
	return "", false
}

// ChangeEvent describes one change of a watched row.
type ChangeEvent struct {
	Type       ChangeType `json:"type"`
	Table      string     `json:"table"`
	DriverName string     `json:"driver_name"`
	RecordID   int64      `json:"id"`
}

// FieldValue returns the event's value of a row column carried by the change
// feed. ok is false for columns the feed does not carry.
func (ev ChangeEvent) FieldValue(field string) (value string, ok bool) {
	switch field {
	case NotificationDriverField:
		return ev.DriverName, true
	case NotificationIDField:
		return strconv.FormatInt(ev.RecordID, 10), true
	}
	return "", false
}

// SubscriptionSpec scopes a change subscription to one table, one equality
// filter and a set of change types.
type SubscriptionSpec struct {
	Table  string
	Filter Filter
	Events []ChangeType
}

// FilterSupported reports whether the change feed carries the filtered
// column. An empty filter is always supported.
func (s SubscriptionSpec) FilterSupported() bool {
	if s.Filter.Field == "" {
		return true
	}
	_, ok := ChangeEvent{}.FieldValue(s.Filter.Field)
	return ok
}

// Matches reports whether the event falls under the subscription. Resync
// events match every subscription on the same table. A filter on a column the
// feed does not carry matches nothing.
func (s SubscriptionSpec) Matches(ev ChangeEvent) bool {
	if s.Table != "" && ev.Table != s.Table {
		return false
	}
	if ev.Type == ChangeResync {
		return true
	}
	if !s.acceptsType(ev.Type) {
		return false
	}
	if s.Filter.Field == "" {
		return true
	}
	value, ok := ev.FieldValue(s.Filter.Field)
	return ok && value == s.Filter.Value
}

func (s SubscriptionSpec) acceptsType(t ChangeType) bool {
	if len(s.Events) == 0 {
		return true
	}
	for _, e := range s.Events {
		if e == ChangeAny || e == t {
			return true
		}
	}
	return false
}
