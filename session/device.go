package session

import (
	"github.com/google/uuid"

	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// DeviceID returns this device's stable identifier, generating and
// persisting one on first use. If the write fails the fresh id is still
// returned; an ephemeral identifier beats none for the current visit.
func DeviceID(store storage.Store) string {
	key := utils.DeviceIDKey()
	if id, ok := store.Get(key); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	if err := store.Set(key, id); err != nil {
		utils.ErrorLogger.Printf("device id not persisted: %v", err)
	}
	return id
}
