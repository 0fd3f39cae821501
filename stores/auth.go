package stores

import (
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// ErrNotSignedIn means no staff token is stored on this device.
var ErrNotSignedIn = errors.New("no staff session on this device")

// AuthStore holds the staff bearer token and user record. Both live and
// die together: SignIn writes both, SignOut removes both. Their lifecycle
// has nothing to do with customer table sessions.
type AuthStore struct {
	store storage.Store
}

func NewAuthStore(store storage.Store) *AuthStore {
	return &AuthStore{store: store}
}

// Token returns the stored bearer token, if any. Its signature matches
// api.TokenSource so the store can be handed straight to the client.
func (s *AuthStore) Token() (string, bool) {
	token, ok := s.store.Get(utils.AuthTokenKey())
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// User returns the stored staff user record, or absent when missing or
// malformed.
func (s *AuthStore) User() (models.AuthUser, bool) {
	var user models.AuthUser

	raw, ok := s.store.Get(utils.AuthUserKey())
	if !ok {
		return user, false
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.AuthUser{}, false
	}
	if err := models.Validate.Struct(&user); err != nil {
		return models.AuthUser{}, false
	}
	return user, true
}

// SignIn stores the issued token and user record.
func (s *AuthStore) SignIn(token string, user models.AuthUser) error {
	if err := s.store.Set(utils.AuthTokenKey(), token); err != nil {
		return err
	}
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(utils.AuthUserKey(), string(encoded))
}

// SignOut clears token and user record together.
func (s *AuthStore) SignOut() {
	s.store.Remove(utils.AuthTokenKey())
	s.store.Remove(utils.AuthUserKey())
}

// StaffClaims is the claim set the backend signs into staff tokens.
type StaffClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Claims decodes the stored token without verifying the signature. Good
// enough to show role and expiry in the UI; never proof of anything —
// the backend re-validates on every request.
func (s *AuthStore) Claims() (*StaffClaims, error) {
	token, ok := s.Token()
	if !ok {
		return nil, ErrNotSignedIn
	}

	claims := &StaffClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		utils.ErrorLogger.Printf("stored staff token unreadable: %v", err)
		return nil, err
	}
	return claims, nil
}
