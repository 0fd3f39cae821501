package models

// TrackedOrder binds the most recently placed order to the session that
// placed it, so the customer can reopen the order-status view after a
// reload. It is a UI convenience only: proof of ownership is the
// OrderToken, and only the backend can validate that.
type TrackedOrder struct {
	OrderID    uint    `json:"order_id" validate:"required"`
	OrderToken *string `json:"order_token,omitempty"`
}
