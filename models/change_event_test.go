package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChangeType(t *testing.T) {
	tests := []struct {
		in     string
		want   ChangeType
		wantOK bool
	}{
		{"INSERT", ChangeInsert, true},
		{" update ", ChangeUpdate, true},
		{"delete", ChangeDelete, true},
		{"*", ChangeAny, true},
		{"resync", ChangeResync, true},
		{"TRUNCATE", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChangeType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriptionSpec_Matches(t *testing.T) {
	spec := DriverNotificationsSubscription("omar")

	tests := []struct {
		name string
		spec SubscriptionSpec
		ev   ChangeEvent
		want bool
	}{
		{
			name: "insert for driver",
			spec: spec,
			ev:   ChangeEvent{Type: ChangeInsert, Table: NotificationsTable, DriverName: "omar", RecordID: 1},
			want: true,
		},
		{
			name: "delete for driver",
			spec: spec,
			ev:   ChangeEvent{Type: ChangeDelete, Table: NotificationsTable, DriverName: "omar", RecordID: 1},
			want: true,
		},
		{
			name: "other driver",
			spec: spec,
			ev:   ChangeEvent{Type: ChangeInsert, Table: NotificationsTable, DriverName: "lena"},
			want: false,
		},
		{
			name: "other table",
			spec: spec,
			ev:   ChangeEvent{Type: ChangeInsert, Table: "driver_tasks", DriverName: "omar"},
			want: false,
		},
		{
			name: "resync ignores filter",
			spec: spec,
			ev:   ChangeEvent{Type: ChangeResync, Table: NotificationsTable},
			want: true,
		},
		{
			name: "type not subscribed",
			spec: SubscriptionSpec{Table: NotificationsTable, Events: []ChangeType{ChangeInsert}},
			ev:   ChangeEvent{Type: ChangeUpdate, Table: NotificationsTable},
			want: false,
		},
		{
			name: "id filter on other record",
			spec: SubscriptionSpec{Table: NotificationsTable, Filter: Filter{Field: NotificationIDField, Value: "42"}},
			ev:   ChangeEvent{Type: ChangeUpdate, Table: NotificationsTable, DriverName: "omar", RecordID: 7},
			want: false,
		},
		{
			name: "id filter on same record",
			spec: SubscriptionSpec{Table: NotificationsTable, Filter: Filter{Field: NotificationIDField, Value: "42"}},
			ev:   ChangeEvent{Type: ChangeUpdate, Table: NotificationsTable, RecordID: 42},
			want: true,
		},
		{
			name: "filter on column not carried by the feed",
			spec: SubscriptionSpec{Table: NotificationsTable, Filter: Filter{Field: "payload", Value: "x"}},
			ev:   ChangeEvent{Type: ChangeInsert, Table: NotificationsTable, DriverName: "omar"},
			want: false,
		},
		{
			name: "no events means all",
			spec: SubscriptionSpec{Table: NotificationsTable},
			ev:   ChangeEvent{Type: ChangeUpdate, Table: NotificationsTable, DriverName: "lena"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Matches(tt.ev))
		})
	}
}

func TestSubscriptionSpec_FilterSupported(t *testing.T) {
	assert.True(t, SubscriptionSpec{Table: NotificationsTable}.FilterSupported())
	assert.True(t, DriverNotificationsSubscription("omar").FilterSupported())
	assert.True(t, SubscriptionSpec{Filter: Filter{Field: NotificationIDField, Value: "1"}}.FilterSupported())
	assert.False(t, SubscriptionSpec{Filter: Filter{Field: "zone", Value: "North"}}.FilterSupported())
}

func TestDriverNotificationsQuery(t *testing.T) {
	q := DriverNotificationsQuery("omar")

	assert.Equal(t, NotificationsTable, q.Table)
	assert.Equal(t, Filter{Field: NotificationDriverField, Value: "omar"}, q.Filter)
	assert.Equal(t, NotificationCreatedAtField, q.OrderBy)
	assert.Equal(t, Descending, q.Direction)
}

func TestNotification_PayloadAccessors(t *testing.T) {
	n := Notification{Payload: map[string]any{"title": "Route changed", "body": 42}}
	assert.Equal(t, "Route changed", n.Title())
	assert.Empty(t, n.Body())
	assert.Empty(t, Notification{}.Title())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "active", SessionActive.String())
	assert.Equal(t, "deactivated", SessionDeactivated.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}
