// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/metrics"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// SyncSession is one activation of a [NotificationSyncClient] for a single
// driver. A deactivated session is never reused: activating again always
// creates a new one.
type SyncSession struct {
	id         string
	driver     string
	generation uint64

	ctx    context.Context
	cancel context.CancelFunc

	client *NotificationSyncClient

	// guarded by client.mu
	state    models.SessionState
	mounted  bool
	handle   string
	inFlight int
}

// ID returns the random identifier used to tag the session's log entries.
func (s *SyncSession) ID() string { return s.id }

// Driver returns the driver identity the session was activated for.
func (s *SyncSession) Driver() string { return s.driver }

// Generation returns the client generation the session was created in.
func (s *SyncSession) Generation() uint64 { return s.generation }

// State returns the current lifecycle state.
func (s *SyncSession) State() models.SessionState {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	return s.state
}

// Mounted reports whether the session may still mutate the client view.
func (s *SyncSession) Mounted() bool {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	return s.mounted
}

// Handle returns the change subscription handle, or "" while none is held.
func (s *SyncSession) Handle() string {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	return s.handle
}

// NotificationSyncClient keeps a local, newest-first list of one driver's
// notifications consistent with the backend.
//
// Activation fetches the list once and subscribes to changes of the driver's
// rows; every change event triggers a full refetch. Each fetch carries a
// request token and only results newer than the last applied one reach the
// view. Completions that arrive after their session was deactivated are
// discarded.
//
// Fetch failures are logged and turn the list empty. Failed subscriptions
// are retried with exponential backoff while the view reports Degraded.
type NotificationSyncClient struct {
	backend    NotificationBackend
	newBackOff func() backoff.BackOff
	logger     *logger.Logger
	metrics    *metrics.Metrics

	mu         sync.Mutex
	closed     bool
	session    *SyncSession
	generation uint64
	issued     uint64
	applied    uint64
	view       models.NotificationView
	observers  map[uint64]func(models.NotificationView)
	observerID uint64

	publishMu     sync.Mutex
	lastPublished uint64

	wg sync.WaitGroup
}

// NewNotificationSyncClient constructs an idle client over backend. The
// retry intervals of workers drive the subscription backoff.
func NewNotificationSyncClient(backend NotificationBackend, workers config.Workers, log *logger.Logger) *NotificationSyncClient {
	return &NotificationSyncClient{
		backend: backend,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			if workers.RetryInitialInterval > 0 {
				b.InitialInterval = workers.RetryInitialInterval
			}
			if workers.RetryMaxInterval > 0 {
				b.MaxInterval = workers.RetryMaxInterval
			}
			b.MaxElapsedTime = 0
			return b
		},
		logger:    log,
		metrics:   metrics.GetMetrics(),
		view:      models.NotificationView{Notifications: []models.Notification{}},
		observers: make(map[uint64]func(models.NotificationView)),
	}
}

// Activate tears down the current session and starts a new one for driver.
//
// With an empty driver or an unconfigured backend nothing else happens: no
// fetch, no subscription, the list keeps its value, and nil is returned.
// Otherwise the initial fetch and the subscription are started in the
// background and the new session is returned.
func (c *NotificationSyncClient) Activate(ctx context.Context, driver string) *SyncSession {
	c.Deactivate(c.current())

	if driver == "" || c.backend == nil || !c.backend.Configured() {
		c.logger.Debug().
			Str("func", "NotificationSyncClient.Activate").
			Str("driver", driver).
			Msg("activation skipped")
		return nil
	}

	sessionCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		cancel()
		return nil
	}
	c.generation++
	s := &SyncSession{
		id:         uuid.NewString(),
		driver:     driver,
		generation: c.generation,
		ctx:        sessionCtx,
		cancel:     cancel,
		client:     c,
		state:      models.SessionActivating,
		mounted:    true,
	}
	prev := c.session
	c.session = s
	c.view.DriverName = driver
	c.view.Degraded = false
	token := c.beginFetchLocked(s)
	c.wg.Add(2)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	// a concurrent Activate may have installed a session in between
	c.Deactivate(prev)

	c.metrics.ActiveSessions.Inc()
	c.logger.WithDriver(driver, s.id).Info().
		Str("func", "NotificationSyncClient.Activate").
		Uint64("generation", s.generation).
		Msg("sync session activated")

	c.publish(snap)

	go func() {
		defer c.wg.Done()
		c.runFetch(s, token)
	}()
	go func() {
		defer c.wg.Done()
		c.subscribe(s)
	}()

	return s
}

// Fetch queries all notifications of driver, newest first, and returns them.
// When driver is the identity of the active session the result also
// replaces the session's list. Failures are logged and yield an empty list;
// they are never returned.
func (c *NotificationSyncClient) Fetch(ctx context.Context, driver string) []models.Notification {
	if driver == "" || c.backend == nil || !c.backend.Configured() {
		return []models.Notification{}
	}

	c.mu.Lock()
	s := c.session
	if s == nil || s.driver != driver {
		c.mu.Unlock()
		list, _ := c.query(ctx, driver)
		return list
	}
	token := c.beginFetchLocked(s)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	list, err := c.query(ctx, driver)
	c.completeFetch(s, token, list, err)
	return list
}

// Deactivate unmounts session, cancels its context and releases its
// subscription handle. It is idempotent, never blocks on in-flight fetches
// and leaves the list untouched. A nil session is ignored.
func (c *NotificationSyncClient) Deactivate(session *SyncSession) {
	if session == nil {
		return
	}

	c.mu.Lock()
	if !session.mounted {
		c.mu.Unlock()
		return
	}
	session.mounted = false
	session.state = models.SessionDeactivated
	handle := session.handle
	session.handle = ""

	var snap *models.NotificationView
	if c.session == session {
		c.session = nil
		c.view.Loading = false
		c.view.Degraded = false
		v := c.snapshotLocked()
		snap = &v
	}
	inFlight := session.inFlight
	c.mu.Unlock()

	session.cancel()
	if handle != "" {
		c.backend.Unsubscribe(handle)
	}
	c.metrics.ActiveSessions.Dec()

	c.logger.WithDriver(session.driver, session.id).Info().
		Str("func", "NotificationSyncClient.Deactivate").
		Int("in_flight", inFlight).
		Bool("had_subscription", handle != "").
		Msg("sync session deactivated")

	if snap != nil {
		c.publish(*snap)
	}
}

// Observe registers fn to receive a snapshot after every state transition.
// Snapshots arrive in increasing Version order. fn runs synchronously on the
// goroutine that caused the transition: it must return quickly and must not
// call back into the client. The returned func removes the observer.
func (c *NotificationSyncClient) Observe(fn func(models.NotificationView)) (cancel func()) {
	c.mu.Lock()
	c.observerID++
	id := c.observerID
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// View returns the current snapshot.
func (c *NotificationSyncClient) View() models.NotificationView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Reset empties the list. Hosts call it when the driver identity is lost.
func (c *NotificationSyncClient) Reset() {
	c.mu.Lock()
	c.view.Notifications = []models.Notification{}
	if c.session == nil {
		c.view.DriverName = ""
		c.view.Loading = false
		c.view.Degraded = false
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)
}

// Close deactivates the current session and waits for every background
// goroutine to exit. The client cannot be activated afterwards.
func (c *NotificationSyncClient) Close() {
	c.mu.Lock()
	c.closed = true
	s := c.session
	c.mu.Unlock()

	c.Deactivate(s)
	c.wg.Wait()
}

func (c *NotificationSyncClient) current() *SyncSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// isCurrentLocked reports whether completions of s may still touch the view.
func (c *NotificationSyncClient) isCurrentLocked(s *SyncSession) bool {
	return s.mounted && c.session != nil && c.session.generation == s.generation
}

func (c *NotificationSyncClient) beginFetchLocked(s *SyncSession) uint64 {
	c.issued++
	s.inFlight++
	c.view.Loading = true
	if s.state == models.SessionActive {
		s.state = models.SessionRefreshing
	}
	return c.issued
}

// query runs select_all for driver and sorts the rows newest first. On
// failure it returns an empty list together with the error.
func (c *NotificationSyncClient) query(ctx context.Context, driver string) ([]models.Notification, error) {
	c.metrics.FetchesTotal.Inc()

	list, err := c.backend.SelectAll(ctx, models.DriverNotificationsQuery(driver))
	if err != nil {
		c.metrics.FetchFailuresTotal.Inc()
		if errors.Is(err, context.Canceled) {
			c.logger.Debug().Err(err).
				Str("func", "NotificationSyncClient.query").
				Str("driver", driver).
				Msg("fetch cancelled")
		} else {
			c.logger.Err(err).
				Str("func", "NotificationSyncClient.query").
				Str("driver", driver).
				Msg("failed to fetch notifications")
		}
		return []models.Notification{}, err
	}

	if list == nil {
		list = []models.Notification{}
	}
	slices.SortStableFunc(list, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list, nil
}

func (c *NotificationSyncClient) runFetch(s *SyncSession, token uint64) {
	list, err := c.query(s.ctx, s.driver)
	c.completeFetch(s, token, list, err)
}

func (c *NotificationSyncClient) completeFetch(s *SyncSession, token uint64, list []models.Notification, err error) {
	c.mu.Lock()
	s.inFlight--

	if !c.isCurrentLocked(s) || token < c.applied {
		c.mu.Unlock()
		c.metrics.StaleResultsDiscarded.Inc()
		c.logger.Debug().
			Str("func", "NotificationSyncClient.completeFetch").
			Str("session", s.id).
			Uint64("token", token).
			Msg("discarding stale fetch result")
		return
	}

	if err != nil {
		list = []models.Notification{}
	}
	c.applied = token
	c.view.Notifications = list
	if token == c.issued {
		c.view.Loading = false
		s.state = models.SessionActive
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)
}

// onChange handles one event of s's subscription by scheduling a refetch.
func (c *NotificationSyncClient) onChange(s *SyncSession, ev models.ChangeEvent) {
	c.mu.Lock()
	if !c.isCurrentLocked(s) {
		c.mu.Unlock()
		return
	}
	c.metrics.ChangeEventsTotal.WithLabelValues(string(ev.Type)).Inc()
	token := c.beginFetchLocked(s)
	c.wg.Add(1)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug().
		Str("func", "NotificationSyncClient.onChange").
		Str("session", s.id).
		Str("type", string(ev.Type)).
		Int64("record", ev.RecordID).
		Msg("change received, refetching")

	c.publish(snap)

	go func() {
		defer c.wg.Done()
		c.runFetch(s, token)
	}()
}

// subscribe opens the change subscription of s, retrying with backoff until
// it succeeds or s is deactivated.
func (c *NotificationSyncClient) subscribe(s *SyncSession) {
	log := c.logger.WithDriver(s.driver, s.id)
	spec := models.DriverNotificationsSubscription(s.driver)
	retried := false

	operation := func() error {
		handle, err := c.backend.Subscribe(s.ctx, spec, func(ev models.ChangeEvent) {
			c.onChange(s, ev)
		})
		if err != nil {
			if s.ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if !c.attachHandle(s, handle) {
			c.backend.Unsubscribe(handle)
			return backoff.Permanent(errSessionClosed)
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		retried = true
		c.metrics.SubscribeRetriesTotal.Inc()
		log.Warn().Err(err).
			Str("func", "NotificationSyncClient.subscribe").
			Dur("retry_in", next).
			Msg("change subscription failed, retrying")
		c.setDegraded(s, true)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(c.newBackOff(), s.ctx), notify); err != nil {
		log.Debug().Err(err).
			Str("func", "NotificationSyncClient.subscribe").
			Msg("subscription abandoned")
		return
	}

	log.Debug().
		Str("func", "NotificationSyncClient.subscribe").
		Bool("after_retry", retried).
		Msg("change subscription established")

	if retried {
		c.recoverSession(s)
	}
}

func (c *NotificationSyncClient) attachHandle(s *SyncSession, handle string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !s.mounted {
		return false
	}
	s.handle = handle
	return true
}

func (c *NotificationSyncClient) setDegraded(s *SyncSession, degraded bool) {
	c.mu.Lock()
	if !c.isCurrentLocked(s) || c.view.Degraded == degraded {
		c.mu.Unlock()
		return
	}
	c.view.Degraded = degraded
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)
}

// recoverSession clears the degraded flag and refetches once to pick up
// changes missed while no subscription was held.
func (c *NotificationSyncClient) recoverSession(s *SyncSession) {
	c.mu.Lock()
	if !c.isCurrentLocked(s) {
		c.mu.Unlock()
		return
	}
	c.view.Degraded = false
	token := c.beginFetchLocked(s)
	c.wg.Add(1)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)

	go func() {
		defer c.wg.Done()
		c.runFetch(s, token)
	}()
}

func (c *NotificationSyncClient) snapshotLocked() models.NotificationView {
	c.view.Version++
	return c.view
}

// publish hands view to every observer unless a newer snapshot was already
// delivered.
func (c *NotificationSyncClient) publish(view models.NotificationView) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	if view.Version <= c.lastPublished {
		return
	}
	c.lastPublished = view.Version

	c.mu.Lock()
	observers := make([]func(models.NotificationView), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(view)
	}
}

type notificationSyncFactory struct {
	backend NotificationBackend
	workers config.Workers
	logger  *logger.Logger
}

// NewNotificationSyncFactory returns a factory of independent sync clients
// sharing backend.
func NewNotificationSyncFactory(backend NotificationBackend, workers config.Workers, logger *logger.Logger) NotificationSyncFactory {
	return &notificationSyncFactory{
		backend: backend,
		workers: workers,
		logger:  logger,
	}
}

func (f *notificationSyncFactory) NewSync() NotificationSync {
	return NewNotificationSyncClient(f.backend, f.workers, f.logger)
}
