package models

// Direction is the sort direction of a select query.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter is a single equality predicate: Field = Value.
type Filter struct {
	Field string
	Value string
}

// SelectQuery is the backend-agnostic form of
// "select all rows of Table where Filter, ordered by OrderBy Direction".
type SelectQuery struct {
	Table     string
	Filter    Filter
	OrderBy   string
	Direction Direction
}

// DriverNotificationsQuery returns the query the sync client issues for driver.
func DriverNotificationsQuery(driver string) SelectQuery {
	return SelectQuery{
		Table:     NotificationsTable,
		Filter:    Filter{Field: NotificationDriverField, Value: driver},
		OrderBy:   NotificationCreatedAtField,
		Direction: Descending,
	}
}

// DriverNotificationsSubscription returns the subscription the sync client
// opens for driver: every change type on the driver's rows.
func DriverNotificationsSubscription(driver string) SubscriptionSpec {
	return SubscriptionSpec{
		Table:  NotificationsTable,
		Filter: Filter{Field: NotificationDriverField, Value: driver},
		Events: []ChangeType{ChangeAny},
	}
}
