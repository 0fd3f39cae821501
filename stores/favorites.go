package stores

import (
	"encoding/json"
	"sort"

	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// FavoritesStore keeps the per-restaurant set of liked dishes. Favorites
// are a device-level preference: scoped by slug only, shared across table
// sessions on purpose.
type FavoritesStore struct {
	store storage.Store
}

func NewFavoritesStore(store storage.Store) *FavoritesStore {
	return &FavoritesStore{store: store}
}

// Get returns the liked dish ids for a restaurant. Malformed storage is
// an empty set, never an error.
func (s *FavoritesStore) Get(slug string) map[uint]bool {
	set := make(map[uint]bool)

	raw, ok := s.store.Get(utils.FavoritesKey(slug))
	if !ok {
		return set
	}

	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return set
	}
	for _, id := range ids {
		if id != 0 {
			set[id] = true
		}
	}
	return set
}

// Toggle flips membership for one dish and persists the result.
func (s *FavoritesStore) Toggle(slug string, dishID uint) (map[uint]bool, error) {
	set := s.Get(slug)
	if set[dishID] {
		delete(set, dishID)
	} else {
		set[dishID] = true
	}

	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	encoded, err := json.Marshal(ids)
	if err != nil {
		return set, err
	}
	return set, s.store.Set(utils.FavoritesKey(slug), string(encoded))
}
