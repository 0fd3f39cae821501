package stores

import (
	"encoding/json"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// OrderTracker remembers the most recently placed order per
// (slug, table session). Scoping by session id, not table number, keeps a
// new session at the same table from inheriting somebody else's order.
// The record is advisory; ownership proof is the order token, which only
// the backend can validate.
type OrderTracker struct {
	store storage.Store
}

func NewOrderTracker(store storage.Store) *OrderTracker {
	return &OrderTracker{store: store}
}

// Save binds an order to the session, overwriting any previous binding.
func (t *OrderTracker) Save(slug, tableSessionID string, order models.TrackedOrder) error {
	encoded, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return t.store.Set(utils.OrderKey(slug, tableSessionID), string(encoded))
}

// Load returns the tracked order for the session, or absent. Malformed
// stored data is absent, never an error.
func (t *OrderTracker) Load(slug, tableSessionID string) (models.TrackedOrder, bool) {
	var order models.TrackedOrder

	raw, ok := t.store.Get(utils.OrderKey(slug, tableSessionID))
	if !ok {
		return order, false
	}
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return models.TrackedOrder{}, false
	}
	if err := models.Validate.Struct(&order); err != nil {
		return models.TrackedOrder{}, false
	}
	return order, true
}
