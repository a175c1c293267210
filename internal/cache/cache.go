// Package cache provides layered memory+disk caching for fetched
// article pages.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and
// layered implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResolveDir expands an empty or "~"-prefixed cache directory to a
// path under the user's home. A home lookup failure falls back to a
// directory under the system temp dir.
func ResolveDir(dir string) string {
	if dir == "" {
		dir = "~/.claimlens/cache"
	}
	if dir == "~" || len(dir) >= 2 && dir[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "claimlens-cache")
		}
		return filepath.Join(home, dir[1:])
	}
	return dir
}

// Key derives a cache key from an article URL. Keys are versioned so a
// format change invalidates old entries.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "claimlens:v1:" + hex.EncodeToString(hash[:])
}
