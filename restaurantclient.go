// Package restaurantclient is the device-side core of the QR table
// ordering system: it resolves a scanned table token into a session and
// keeps all locally persisted ordering state (cart, favorites, last
// order, staff auth) for one device. Rendering and routing layers call
// into it and display what it returns.
package restaurantclient

import (
	"github.com/yeremiapane/restaurant-client/api"
	"github.com/yeremiapane/restaurant-client/config"
	"github.com/yeremiapane/restaurant-client/session"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/stores"
	"github.com/yeremiapane/restaurant-client/utils"
)

// App bundles the client core over one device store and one backend.
type App struct {
	Config    config.Config
	Store     storage.Store
	API       *api.Client
	Auth      *stores.AuthStore
	Favorites *stores.FavoritesStore
	Tracker   *stores.OrderTracker
}

// New builds the core from the environment.
func New() *App {
	return NewWithConfig(config.Load())
}

// NewWithConfig builds the core over an explicit configuration. When the
// configured store cannot be opened the core degrades to an in-memory
// store and keeps serving; losing persistence is better than losing the
// visit.
func NewWithConfig(cfg config.Config) *App {
	store, err := cfg.OpenStore()
	if err != nil {
		utils.ErrorLogger.Printf("device store %q unavailable, falling back to memory: %v", cfg.StorageDriver, err)
		store = storage.NewMemoryStore()
	}

	client := api.NewClient(cfg.APIBaseURL)
	auth := stores.NewAuthStore(store)
	client.TokenSource = auth.Token

	return &App{
		Config:    cfg,
		Store:     store,
		API:       client,
		Auth:      auth,
		Favorites: stores.NewFavoritesStore(store),
		Tracker:   stores.NewOrderTracker(store),
	}
}

// Resolver returns a session resolver for one restaurant.
func (a *App) Resolver(slug string) *session.Resolver {
	return session.NewResolver(a.API, slug)
}

// Cart returns the cart store for one (restaurant, table) scope.
func (a *App) Cart(slug, tableNumber string) *stores.CartStore {
	return stores.NewCartStore(a.Store, slug, tableNumber)
}

// DeviceID returns this device's stable identifier.
func (a *App) DeviceID() string {
	return session.DeviceID(a.Store)
}
