package storage

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixOwnerRequests = "owner_requests"
	PrefixComprovantes  = "comprovantes"
)

// NewKey builds a unique object key under prefix, keeping the original extension.
func NewKey(prefix, filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}
	return path.Join(prefix, now.UTC().Format("2006/01"), uuid.NewString()+ext)
}

// joinURL joins a base URL and a key without doubling slashes.
func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
