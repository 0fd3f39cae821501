package utils

import "strings"

// Storage keys are namespaced under "rc" and built from escaped scope
// segments, so two different (slug, table) tuples can never produce the
// same key even when the raw values contain the separator.

const keyPrefix = "rc"

// escapeSegment makes a scope value safe to embed between ':' separators.
// '%' must be escaped first so unescaping stays unambiguous.
func escapeSegment(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, ":", "%3A")
	return s
}

// DeviceIDKey is the single global key holding the device identifier.
func DeviceIDKey() string {
	return keyPrefix + ":device-id"
}

// CartKey scopes a cart to one restaurant and one physical table.
func CartKey(slug, tableNumber string) string {
	return keyPrefix + ":cart:" + escapeSegment(slug) + ":t:" + escapeSegment(tableNumber)
}

// FavoritesKey scopes favorites by restaurant only; favorites survive
// across table sessions on the same device.
func FavoritesKey(slug string) string {
	return keyPrefix + ":fav:" + escapeSegment(slug)
}

// OrderKey scopes the last tracked order by table session id, not table
// number, so a new session at the same table never inherits a stale order.
func OrderKey(slug, tableSessionID string) string {
	return keyPrefix + ":order:" + escapeSegment(slug) + ":s:" + escapeSegment(tableSessionID)
}

// AuthTokenKey and AuthUserKey hold the staff bearer token and user
// record. Their lifecycle is independent of all table-session state.
func AuthTokenKey() string {
	return keyPrefix + ":auth:token"
}

func AuthUserKey() string {
	return keyPrefix + ":auth:user"
}
