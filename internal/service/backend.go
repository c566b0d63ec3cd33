package service

// notificationBackend joins a querier and a change feed into one
// [NotificationBackend].
type notificationBackend struct {
	NotificationQuerier
	ChangeFeed
}

// NewNotificationBackend composes querier and feed. The result reports
// Configured only when both are present; an unconfigured backend turns the
// sync client into a silent no-op.
func NewNotificationBackend(querier NotificationQuerier, feed ChangeFeed) NotificationBackend {
	return &notificationBackend{
		NotificationQuerier: querier,
		ChangeFeed:          feed,
	}
}

func (b *notificationBackend) Configured() bool {
	return b.NotificationQuerier != nil && b.ChangeFeed != nil
}
