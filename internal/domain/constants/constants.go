// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RoleAdmin gates administrative endpoints (order management, bulk import).
	RoleAdmin = "admin"

	// RoleUser is the default role carried by customer tokens.
	RoleUser = "user"
)

// MaxQuantityPerLine is the flat per-line quantity cap for cart items.
// There is no inventory management in this application, so stock counts are
// never checked; this cap is the only quantity rule.
const MaxQuantityPerLine = 10
