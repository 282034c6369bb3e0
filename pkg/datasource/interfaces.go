//go:generate mockgen -destination=./mocks/datasource.go -package=mocks . Datasource

// Package datasource lists and fetches satellite product files from remote
// backends. Two backends share one contract: an object-store backend backed
// by S3 and an HTTP backend that scrapes directory-index documents. Both wrap
// their listings in a TTL cache so repeated discovery over the same window is
// cheap.
package datasource

import "context"

// Datasource lists the contents of remote directories and fetches file bytes.
// All paths are relative to the datasource's base URL; listings return names
// carrying the requested directory prefix, so every returned name can be
// passed straight to DownloadFile.
type Datasource interface {
	// ListFiles returns the file names under dirPath. Listings are cached
	// per directory; within the TTL a repeated call issues no remote
	// request. An absent or empty remote directory yields an empty list,
	// not an error.
	ListFiles(ctx context.Context, dirPath string) ([]string, error)

	// DownloadFile fetches the raw bytes of the file at filePath. Transport
	// failures are wrapped in a retrieval error naming the path; there is
	// no internal retry.
	DownloadFile(ctx context.Context, filePath string) ([]byte, error)

	// ClearCache drops the cached listing for dirPath, failing when no
	// entry exists. An empty dirPath clears the whole cache.
	ClearCache(dirPath string) error
}
