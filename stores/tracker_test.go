package stores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/stores"
	"github.com/yeremiapane/restaurant-client/utils"
)

func TestTrackerOverwritesPerSession(t *testing.T) {
	tracker := stores.NewOrderTracker(storage.NewMemoryStore())

	token := "tok-1"
	assert.NoError(t, tracker.Save("warung-sate", "sess-1", models.TrackedOrder{OrderID: 100, OrderToken: &token}))
	assert.NoError(t, tracker.Save("warung-sate", "sess-1", models.TrackedOrder{OrderID: 200}))

	order, ok := tracker.Load("warung-sate", "sess-1")
	assert.True(t, ok)
	assert.Equal(t, uint(200), order.OrderID)
	assert.Nil(t, order.OrderToken)
}

// A fresh session at the same physical table must not see the previous
// session's order.
func TestTrackerScopedBySessionNotTable(t *testing.T) {
	tracker := stores.NewOrderTracker(storage.NewMemoryStore())

	assert.NoError(t, tracker.Save("warung-sate", "sess-1", models.TrackedOrder{OrderID: 100}))

	_, ok := tracker.Load("warung-sate", "sess-2")
	assert.False(t, ok)
}

func TestTrackerAbsentAndMalformed(t *testing.T) {
	store := storage.NewMemoryStore()
	tracker := stores.NewOrderTracker(store)

	_, ok := tracker.Load("warung-sate", "sess-1")
	assert.False(t, ok)

	assert.NoError(t, store.Set(utils.OrderKey("warung-sate", "sess-1"), "{broken"))
	_, ok = tracker.Load("warung-sate", "sess-1")
	assert.False(t, ok)

	// Missing order id fails validation and reads as absent.
	assert.NoError(t, store.Set(utils.OrderKey("warung-sate", "sess-1"), `{"order_token":"tok"}`))
	_, ok = tracker.Load("warung-sate", "sess-1")
	assert.False(t, ok)
}
