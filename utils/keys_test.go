package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/utils"
)

func TestKeysAreDeterministic(t *testing.T) {
	assert.Equal(t, utils.CartKey("warung-sate", "5"), utils.CartKey("warung-sate", "5"))
	assert.Equal(t, utils.OrderKey("warung-sate", "abc"), utils.OrderKey("warung-sate", "abc"))
	assert.Equal(t, utils.FavoritesKey("warung-sate"), utils.FavoritesKey("warung-sate"))
}

func TestKeysAreScopedApart(t *testing.T) {
	assert.NotEqual(t, utils.CartKey("slug-a", "5"), utils.CartKey("slug-b", "5"))
	assert.NotEqual(t, utils.CartKey("slug-a", "5"), utils.CartKey("slug-a", "6"))
	assert.NotEqual(t, utils.OrderKey("slug-a", "s1"), utils.OrderKey("slug-a", "s2"))
	assert.NotEqual(t, utils.AuthTokenKey(), utils.AuthUserKey())
}

// Raw values containing the separator must not let two different scope
// tuples collide on the same key.
func TestKeysEscapeSeparators(t *testing.T) {
	assert.NotEqual(t, utils.CartKey("a:b", "c"), utils.CartKey("a", "b:c"))
	assert.NotEqual(t, utils.OrderKey("a%3A", "b"), utils.OrderKey("a", "3A:b"))
}

func TestCartAndOrderKeysNeverOverlap(t *testing.T) {
	// Same tuple, different stores: still different keys.
	assert.NotEqual(t, utils.CartKey("resto", "7"), utils.OrderKey("resto", "7"))
}
