// Package constants holds shared domain constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache backend types.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)
