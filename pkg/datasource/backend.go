package datasource

import (
	"context"
	"time"

	"github.com/wxtools/satdl/pkg/errors"
	"github.com/wxtools/satdl/pkg/locator"
)

// Backend identifies one of the supported datasource variants.
type Backend string

const (
	// BackendS3 lists and fetches from a public S3 bucket.
	BackendS3 Backend = locator.BackendAWS
	// BackendHTTP scrapes HTTP directory-index documents.
	BackendHTTP Backend = locator.BackendHTTP
)

// Options control caching and transport behavior of a datasource.
type Options struct {
	CacheTTL        time.Duration // listing cache TTL; <= 0 disables caching
	CacheMaxEntries int           // listing cache size bound
	HTTPTimeout     time.Duration // per-request timeout for the HTTP backend
	UserAgent       string        // User-Agent header for the HTTP backend
}

// New builds the datasource for the requested backend, rooted at the base
// URL the locator publishes for it. Reachability of the remote endpoint is
// verified eagerly, so transport misconfiguration surfaces here rather than
// on the first listing.
func New(ctx context.Context, loc locator.ProductLocator, backend Backend, opts Options) (Datasource, error) {
	base, err := loc.GetBaseURL(string(backend))
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendS3:
		return NewS3(ctx, base.URL, base.Region, opts)
	case BackendHTTP:
		return NewHTTP(ctx, base.URL, opts)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedBackend, "'%s'", backend)
	}
}

// joinURL joins a base URL and a relative path with exactly one separating
// slash. url.JoinPath is avoided because it cleans trailing slashes, which
// directory URLs rely on.
func joinURL(head, tail string) string {
	switch {
	case head == "":
		return tail
	case head[len(head)-1] == '/' && len(tail) > 0 && tail[0] == '/':
		return head + tail[1:]
	case head[len(head)-1] != '/' && (len(tail) == 0 || tail[0] != '/'):
		return head + "/" + tail
	default:
		return head + tail
	}
}
