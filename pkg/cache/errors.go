package cache

import "errors"

// ErrEmptyKey is returned by Set when called with an empty key.
var ErrEmptyKey = errors.New("cache: empty key")
