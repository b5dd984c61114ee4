package repository

// CacheRepository caches serialized projection results keyed by their
// input parameters.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
