// internal/adapters/out/gcs/common/gcs_url.go
package common

import (
	"fmt"
	"net/url"
	"strings"
)

// PublicURL builds the public download URL for an object. An empty bucket
// falls back to defaultBucket.
func PublicURL(bucket, objectPath, defaultBucket string) string {
	b := strings.TrimSpace(bucket)
	if b == "" {
		b = strings.TrimSpace(defaultBucket)
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b, obj)
}

// ParseURL splits a public GCS URL into (bucket, objectPath). Recognized
// hosts:
//   - storage.googleapis.com
//   - storage.cloud.google.com
func ParseURL(u string) (string, string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return "", "", false
	}

	host := strings.ToLower(parsed.Host)
	if host != "storage.googleapis.com" && host != "storage.cloud.google.com" {
		return "", "", false
	}

	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	objectPath, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	return parts[0], objectPath, true
}
