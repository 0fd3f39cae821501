package stores_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/stores"
	"github.com/yeremiapane/restaurant-client/utils"
)

func signedStaffToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	claims := &stores.StaffClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return token
}

func TestSignInAndOut(t *testing.T) {
	auth := stores.NewAuthStore(storage.NewMemoryStore())

	user := models.AuthUser{ID: 3, Email: "staff@example.com", Name: "Staff", Roles: []string{"staff"}}
	assert.NoError(t, auth.SignIn("bearer-token", user))

	token, ok := auth.Token()
	assert.True(t, ok)
	assert.Equal(t, "bearer-token", token)

	stored, ok := auth.User()
	assert.True(t, ok)
	assert.Equal(t, user, stored)

	// Token and user record are cleared together.
	auth.SignOut()
	_, ok = auth.Token()
	assert.False(t, ok)
	_, ok = auth.User()
	assert.False(t, ok)
}

func TestClaimsDecode(t *testing.T) {
	auth := stores.NewAuthStore(storage.NewMemoryStore())

	assert.NoError(t, auth.SignIn(signedStaffToken(t, 3, "chef"), models.AuthUser{ID: 3, Email: "chef@example.com"}))

	claims, err := auth.Claims()
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "chef", claims.Role)
}

func TestClaimsWithoutSession(t *testing.T) {
	auth := stores.NewAuthStore(storage.NewMemoryStore())

	_, err := auth.Claims()
	assert.ErrorIs(t, err, stores.ErrNotSignedIn)
}

func TestMalformedUserRecordReadsAbsent(t *testing.T) {
	store := storage.NewMemoryStore()
	auth := stores.NewAuthStore(store)

	assert.NoError(t, store.Set(utils.AuthUserKey(), "not json"))
	_, ok := auth.User()
	assert.False(t, ok)

	// An email that fails validation is treated the same way.
	assert.NoError(t, store.Set(utils.AuthUserKey(), `{"id":3,"email":"not-an-email"}`))
	_, ok = auth.User()
	assert.False(t, ok)
}
