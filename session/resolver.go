package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/restaurant-client/api"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// State describes where a table visit stands.
type State int

const (
	// Unresolved: we hold at most a raw token, no usable session.
	Unresolved State = iota
	// Resolved: the backend issued a session; its ids drive all scoping.
	Resolved
	// Expired: the session's known expiry has passed. The resolver must
	// re-resolve before the session ids may be used again.
	Expired
)

func (s State) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Expired:
		return "expired"
	default:
		return "unresolved"
	}
}

var (
	// ErrUnresolved means no session has been obtained yet.
	ErrUnresolved = errors.New("no table session resolved")
	// ErrSessionExpired means the previously resolved session may no
	// longer be used for scoping new orders.
	ErrSessionExpired = errors.New("table session expired")
)

// Boundary is the slice of the backend client the resolver depends on.
type Boundary interface {
	ResolveTableToken(ctx context.Context, slug string, token models.TableAccessToken) (*models.TableSession, error)
	CreateGuestSession(ctx context.Context, slug, tableNumber string) (*models.TableSession, error)
}

// Resolver turns a scanned table token (or guest entry) into the one
// authoritative TableSession for this visit. It caches a resolution only
// for the exact raw token that produced it; a different token always hits
// the backend.
type Resolver struct {
	boundary Boundary
	slug     string
	now      func() time.Time

	lastToken models.TableAccessToken
	session   *models.TableSession
}

func NewResolver(boundary Boundary, slug string) *Resolver {
	return &Resolver{
		boundary: boundary,
		slug:     slug,
		now:      time.Now,
	}
}

// State reports the current lifecycle position.
func (r *Resolver) State() State {
	switch {
	case r.session == nil:
		return Unresolved
	case r.session.Expired(r.now()):
		return Expired
	default:
		return Resolved
	}
}

// Resolve exchanges a token for a session. Re-resolving the same raw
// token while its session is still live returns the held session;
// anything else goes to the backend. A session that arrives already
// expired is rejected as an invalid token, never handed to the caller.
func (r *Resolver) Resolve(ctx context.Context, token models.TableAccessToken) (*models.TableSession, error) {
	if r.session != nil && token != "" && token == r.lastToken && !r.session.Expired(r.now()) {
		return r.session, nil
	}

	session, err := r.boundary.ResolveTableToken(ctx, r.slug, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(r.now()) {
		return nil, fmt.Errorf("%w: session expired at issue", api.ErrInvalidToken)
	}

	r.lastToken = token
	r.session = session
	utils.InfoLogger.Printf("table session resolved for %s table %s", r.slug, session.TableNumber)
	return session, nil
}

// Guest opens a tokenless session where the venue allows it.
func (r *Resolver) Guest(ctx context.Context, tableNumber string) (*models.TableSession, error) {
	session, err := r.boundary.CreateGuestSession(ctx, r.slug, tableNumber)
	if err != nil {
		return nil, err
	}

	r.lastToken = ""
	r.session = session
	utils.InfoLogger.Printf("guest session opened for %s table %s", r.slug, tableNumber)
	return session, nil
}

// Session returns the live session, or the reason there is none. Once the
// known expiry passes, the session is dropped so a later Resolve with the
// same token re-fetches instead of silently reusing stale ids.
func (r *Resolver) Session() (*models.TableSession, error) {
	if r.session == nil {
		return nil, ErrUnresolved
	}
	if r.session.Expired(r.now()) {
		r.session = nil
		return nil, ErrSessionExpired
	}
	return r.session, nil
}

// Invalidate drops the held session. Callers invoke it when the backend
// starts rejecting the session as unauthorized; expiry there is
// authoritative even when no client-side expiry is known.
func (r *Resolver) Invalidate() {
	r.session = nil
}
