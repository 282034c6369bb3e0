// Package locator implements product locators for satellite imagery datasets.
//
// A product locator knows three things about a dataset family: which token
// combinations (instrument, level, scene, mode, channel, origin, version) are
// legal, how the remote directory tree is organized in time, and how product
// filenames are built. From those it enumerates the remote directories
// covering a time range, recognizes product filenames, and extracts the UTC
// timestamp encoded in them.
//
// Timestamps embedded in product filenames are always interpreted as UTC.
package locator

import (
	"maps"
	"slices"
	"time"

	"github.com/wxtools/satdl/pkg/errors"
)

// Backend identifiers accepted by GetBaseURL.
const (
	BackendAWS  = "AWS"
	BackendHTTP = "HTTP"
)

// BaseURL is the remote root of a dataset for one backend, with an optional
// region hint for object-store backends.
type BaseURL struct {
	URL    string
	Region string
}

// ProductLocator is the contract consumed by the downloader. One instance
// describes a single dataset product family; all validation happens at
// construction, so a ProductLocator never touches the network and never
// fails after it has been built.
type ProductLocator interface {
	// GetPaths returns the ordered list of remote directory paths whose
	// time coverage intersects [start, end]. Both endpoints are included
	// even when they fall mid-interval. The caller must pass start <= end.
	GetPaths(start, end time.Time) []string

	// Match reports whether filename matches the product filename pattern
	// exactly.
	Match(filename string) bool

	// GetTimestamp extracts the UTC timestamp from a product filename. It
	// fails with a format error when the filename does not contain exactly
	// one timestamp field.
	GetTimestamp(filename string) (time.Time, error)

	// GetBaseURL returns the remote root for the requested backend
	// identifier, failing for unknown backends.
	GetBaseURL(backend string) (BaseURL, error)
}

// productLocator is the single concrete locator shared by all families.
// Families differ only in the data they are constructed with.
type productLocator struct {
	pattern     *Pattern
	granularity Granularity
	pathPrefix  string
	formatPath  pathFormat
	baseURLs    map[string]BaseURL
}

func (l *productLocator) GetPaths(start, end time.Time) []string {
	current := l.granularity.Truncate(start.UTC())
	last := l.granularity.Truncate(end.UTC())

	var paths []string
	for !current.After(last) {
		paths = append(paths, l.pathPrefix+l.formatPath(current)+"/")
		current = l.granularity.Next(current)
	}
	return paths
}

func (l *productLocator) Match(filename string) bool {
	return l.pattern.Match(filename)
}

func (l *productLocator) GetTimestamp(filename string) (time.Time, error) {
	return l.pattern.Timestamp(filename)
}

func (l *productLocator) GetBaseURL(backend string) (BaseURL, error) {
	base, ok := l.baseURLs[backend]
	if !ok {
		supported := slices.Sorted(maps.Keys(l.baseURLs))
		return BaseURL{}, errors.Wrapf(errors.ErrUnsupportedBackend,
			"'%s', supported backends: %v", backend, supported)
	}
	return base, nil
}
