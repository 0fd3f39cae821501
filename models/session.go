package models

import "time"

// TableAccessToken is the rotating token embedded in a table's QR code.
// It is opaque to the client and short-lived; only the backend can judge
// whether it is still valid.
type TableAccessToken string

// TableSession is issued by the backend when a table access token is
// resolved, or when a guest session is opened without one. It is
// immutable on the client; a new session replaces it wholesale.
type TableSession struct {
	TableSessionID string  `json:"table_session_id" validate:"required"`
	TableNumber    string  `json:"table_number" validate:"required"`
	SessionSecret  *string `json:"session_secret,omitempty"`
	// ExpiresAt absent means the backend gave us no client-side expiry.
	// That is a distinct state, not a far-future expiry.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// HasKnownExpiry reports whether the backend communicated an expiry for
// this session.
func (s *TableSession) HasKnownExpiry() bool {
	return s.ExpiresAt != nil
}

// Expired reports whether a known expiry has passed. A session without a
// known expiry never reports expired here; the backend remains the
// authority on order submission.
func (s *TableSession) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// CanAuthenticateOrders reports whether the session carries the secret
// needed to cryptographically authenticate order submissions.
func (s *TableSession) CanAuthenticateOrders() bool {
	return s.SessionSecret != nil && *s.SessionSecret != ""
}
