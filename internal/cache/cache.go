package cache

import "errors"

// ErrCacheMiss is returned when the key is absent; callers fall through to
// the store and repopulate.
var ErrCacheMiss = errors.New("cache miss")
