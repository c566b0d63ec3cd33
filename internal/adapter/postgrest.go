package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/utils"
	"github.com/MKhiriev/fleet-notify/internal/validators"
	"github.com/MKhiriev/fleet-notify/models"
)

const (
	tokenIssuer = "fleet-notify"
	tokenTTL    = time.Hour
	// tokens are renewed this long before they expire
	tokenRenewBefore = time.Minute
)

type postgRESTAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator

	secret string
	role   string

	mu             sync.Mutex
	token          string
	tokenExpiresAt time.Time
	now            func() time.Time

	logger *logger.Logger
}

// NewPostgRESTAdapter constructs a [NotificationQuerier] for the PostgREST
// endpoint at cfg.RESTURL. Requests carry a bearer token signed with
// cfg.JWTSecret that claims cfg.Role.
//
// Returns an error wrapping [ErrInvalidBaseURL] if cfg.RESTURL is empty or
// cannot be parsed as a valid URL.
func NewPostgRESTAdapter(cfg config.Adapter, logger *logger.Logger) (NotificationQuerier, error) {
	baseURL, err := normalizeBaseURL(cfg.RESTURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &postgRESTAdapter{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		validator: validators.NewRequestValidator(),
		secret:    cfg.JWTSecret,
		role:      cfg.Role,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SelectAll implements [NotificationQuerier] as
//
//	GET /<table>?select=*&<field>=eq.<value>&order=<column>.<direction>
func (p *postgRESTAdapter) SelectAll(ctx context.Context, query models.SelectQuery) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	token, err := p.bearerToken()
	if err != nil {
		log.Err(err).Str("func", "postgRESTAdapter.SelectAll").Msg("failed to issue role token")
		return nil, err
	}

	req := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("table", query.Table).
		SetQueryParam("select", "*")

	if query.Filter.Field != "" {
		req.SetQueryParam(query.Filter.Field, "eq."+query.Filter.Value)
	}
	if query.OrderBy != "" {
		direction := models.Ascending
		if query.Direction == models.Descending {
			direction = models.Descending
		}
		req.SetQueryParam("order", query.OrderBy+"."+string(direction))
	}

	resp, err := req.Get("/{table}")
	if err != nil {
		log.Err(err).
			Str("func", "postgRESTAdapter.SelectAll").
			Str("table", query.Table).
			Msg("select request failed")
		return nil, fmt.Errorf("select request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "postgRESTAdapter.SelectAll").
			Str("table", query.Table).
			Int("status", resp.StatusCode()).
			Msg("select request rejected")
		return nil, err
	}

	notifications, err := decodeNotifications(resp.Body())
	if err != nil {
		log.Err(err).Str("func", "postgRESTAdapter.SelectAll").Msg("failed to decode rows")
		return nil, err
	}

	return notifications, nil
}

// bearerToken returns the cached role token, signing a new one when the
// cached token is missing or about to expire.
func (p *postgRESTAdapter) bearerToken() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.token != "" && now.Add(tokenRenewBefore).Before(p.tokenExpiresAt) {
		return p.token, nil
	}

	token, err := utils.GenerateRoleToken(p.role, tokenIssuer, tokenTTL, p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssuingRoleToken, err)
	}

	p.token = token
	p.tokenExpiresAt = now.Add(tokenTTL)
	return token, nil
}

// decodeNotifications maps PostgREST rows onto notifications. Rows carrying
// a "payload" object use it as the payload; otherwise every column other
// than id, driver_name and created_at is kept as payload.
func decodeNotifications(body []byte) ([]models.Notification, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	notifications := make([]models.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := decodeNotification(row)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func decodeNotification(row map[string]any) (models.Notification, error) {
	var n models.Notification

	if raw, ok := row["id"].(json.Number); ok {
		id, err := raw.Int64()
		if err != nil {
			return n, fmt.Errorf("%w: id %q: %w", ErrDecodingResponse, raw, err)
		}
		n.ID = id
	}

	n.DriverName, _ = row[models.NotificationDriverField].(string)

	if raw, ok := row[models.NotificationCreatedAtField].(string); ok && raw != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return n, fmt.Errorf("%w: created_at %q: %w", ErrDecodingResponse, raw, err)
		}
		n.CreatedAt = createdAt
	}

	if payload, ok := row["payload"].(map[string]any); ok {
		n.Payload = payload
		return n, nil
	}

	for key, value := range row {
		switch key {
		case "id", models.NotificationDriverField, models.NotificationCreatedAtField, "payload":
			continue
		}
		if n.Payload == nil {
			n.Payload = make(map[string]any, len(row))
		}
		n.Payload[key] = value
	}

	return n, nil
}
