package stores

import (
	"encoding/json"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// CartStore manages the in-progress order for one (slug, tableNumber)
// scope. Every operation loads, mutates and persists the full line
// sequence; with two tabs on the same scope the last writer wins.
type CartStore struct {
	store       storage.Store
	slug        string
	tableNumber string
}

func NewCartStore(store storage.Store, slug, tableNumber string) *CartStore {
	return &CartStore{store: store, slug: slug, tableNumber: tableNumber}
}

func (s *CartStore) key() string {
	return utils.CartKey(s.slug, s.tableNumber)
}

// Load reads the persisted cart for this scope. Missing or malformed data
// yields an empty cart; lines failing validation are dropped one by one.
// The next Save repairs whatever was stored.
func (s *CartStore) Load() models.CartState {
	state := models.CartState{Slug: s.slug, TableNumber: s.tableNumber}

	raw, ok := s.store.Get(s.key())
	if !ok {
		return state
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		utils.ErrorLogger.Printf("cart for %s table %s unreadable, starting empty: %v", s.slug, s.tableNumber, err)
		return state
	}

	for i := range lines {
		line := lines[i]
		if err := models.Validate.Struct(&line); err != nil {
			continue
		}
		// Stored keys may predate the current fingerprint; recompute.
		line.Key = models.LineIdentityKey(line.MenuItemID, line.Modifiers)
		state.Lines = append(state.Lines, line)
	}
	return state
}

// Save persists the full line sequence, overwriting any prior value.
func (s *CartStore) Save(state models.CartState) error {
	encoded, err := json.Marshal(state.Lines)
	if err != nil {
		return err
	}
	return s.store.Set(s.key(), string(encoded))
}

// Add merges qty of the given configuration into the cart. A line with
// the same identity key grows by qty (capped at 99) instead of
// duplicating; otherwise the line is appended with at least quantity 1.
func (s *CartStore) Add(line models.CartLine, qty int) (models.CartState, error) {
	if qty < 1 {
		qty = 1
	}

	line.Modifiers = line.Modifiers.Normalize()
	line.Key = models.LineIdentityKey(line.MenuItemID, line.Modifiers)

	state := s.Load()
	for i := range state.Lines {
		if state.Lines[i].Key != line.Key {
			continue
		}
		q := state.Lines[i].Quantity + qty
		if q > models.MaxLineQuantity {
			q = models.MaxLineQuantity
		}
		state.Lines[i].Quantity = q
		return state, s.Save(state)
	}

	line.Quantity = qty
	state.Lines = append(state.Lines, line)
	return state, s.Save(state)
}

// SetQuantity overwrites the quantity of every line for the menu item,
// clamped to [0, 99]. Zero removes the lines outright; a zero-quantity
// line is never persisted.
func (s *CartStore) SetQuantity(menuItemID uint, quantity int) (models.CartState, error) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity > models.MaxLineQuantity {
		quantity = models.MaxLineQuantity
	}

	state := s.Load()
	var lines []models.CartLine
	for _, line := range state.Lines {
		if line.MenuItemID != menuItemID {
			lines = append(lines, line)
			continue
		}
		if quantity == 0 {
			continue
		}
		line.Quantity = quantity
		lines = append(lines, line)
	}
	state.Lines = lines
	return state, s.Save(state)
}

// Clear empties the cart for this scope.
func (s *CartStore) Clear() {
	s.store.Remove(s.key())
}

// Total sums price times quantity over all lines, in exact cents.
func (s *CartStore) Total() models.Cents {
	state := s.Load()
	return state.Total()
}

// Count sums all line quantities.
func (s *CartStore) Count() int {
	state := s.Load()
	return state.Count()
}
