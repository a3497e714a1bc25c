// Package constants holds shared application-level constant values.
package constants

// Runtime environment names as they appear in config.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Supported event publisher providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pagination bounds for list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
