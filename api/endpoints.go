package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yeremiapane/restaurant-client/models"
)

// ResolveTableToken exchanges a QR-code token for a table session. A
// rejected token comes back wrapped in ErrInvalidToken; anything else
// (network failure, backend outage) passes through untouched.
func (c *Client) ResolveTableToken(ctx context.Context, slug string, token models.TableAccessToken) (*models.TableSession, error) {
	body := map[string]string{"token": string(token)}

	var session models.TableSession
	err := c.Do(ctx, http.MethodPost, "/api/"+url.PathEscape(slug)+"/table-sessions", body, &session)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusGone:
				return nil, fmt.Errorf("%w: %s", ErrInvalidToken, apiErr.Message)
			}
		}
		return nil, err
	}

	if err := models.Validate.Struct(&session); err != nil {
		return nil, fmt.Errorf("malformed table session from backend: %w", err)
	}
	return &session, nil
}

// CreateGuestSession opens a session without a token, for venues that
// allow guest entry.
func (c *Client) CreateGuestSession(ctx context.Context, slug, tableNumber string) (*models.TableSession, error) {
	body := map[string]string{"table_number": tableNumber}

	var session models.TableSession
	err := c.Do(ctx, http.MethodPost, "/api/"+url.PathEscape(slug)+"/table-sessions/guest", body, &session)
	if err != nil {
		return nil, err
	}

	if err := models.Validate.Struct(&session); err != nil {
		return nil, fmt.Errorf("malformed table session from backend: %w", err)
	}
	return &session, nil
}

type orderRequest struct {
	TableSessionID string            `json:"table_session_id"`
	SessionSecret  *string           `json:"session_secret,omitempty"`
	Items          []models.CartLine `json:"items"`
}

// PlaceOrder submits the cart for a session. The returned order id and
// token are what the order tracker persists locally.
func (c *Client) PlaceOrder(ctx context.Context, slug string, session *models.TableSession, lines []models.CartLine) (*models.TrackedOrder, error) {
	body := orderRequest{
		TableSessionID: session.TableSessionID,
		SessionSecret:  session.SessionSecret,
		Items:          lines,
	}

	var tracked models.TrackedOrder
	if err := c.Do(ctx, http.MethodPost, "/api/"+url.PathEscape(slug)+"/orders", body, &tracked); err != nil {
		return nil, err
	}
	return &tracked, nil
}
