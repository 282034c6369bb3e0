//go:generate mockgen -destination=./mocks/downloader.go -package=mocks . Locator,Source,Repository

// Package downloader ties discovery and retrieval together: a product locator
// names the remote directories a time window can touch, a datasource lists
// and fetches them, and a repository keeps what was fetched so repeated runs
// skip work already done.
package downloader

import (
	"context"
	"time"

	"github.com/wxtools/satdl/pkg/locator"
)

// Locator enumerates candidate directories for a time window and recognizes
// the product's file names.
type Locator interface {
	GetPaths(start, end time.Time) []string
	Match(filename string) bool
	GetTimestamp(filename string) (time.Time, error)
	GetBaseURL(backend string) (locator.BaseURL, error)
}

// Source lists remote directories and fetches file bytes.
type Source interface {
	ListFiles(ctx context.Context, dirPath string) ([]string, error)
	DownloadFile(ctx context.Context, filePath string) ([]byte, error)
}

// Repository persists fetched files and answers presence checks.
type Repository interface {
	Exists(filePath string) bool
	Save(filePath string, data []byte) error
}
