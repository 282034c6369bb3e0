package downloader

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/wxtools/satdl/internal/logger"
	pkgerrors "github.com/wxtools/satdl/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxConcurrent bounds the download worker pool when no explicit
// limit is configured.
const DefaultMaxConcurrent = 4

// Downloader discovers product files inside a time window and retrieves the
// ones the repository does not already hold.
type Downloader struct {
	locator       Locator
	source        Source
	repository    Repository
	maxConcurrent int
	tolerance     time.Duration
	group         singleflight.Group
}

// New wires a downloader from its three collaborators. maxConcurrent bounds
// the retrieval worker pool; values below one select DefaultMaxConcurrent.
func New(loc Locator, src Source, repo Repository, maxConcurrent int) *Downloader {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Downloader{
		locator:       loc,
		source:        src,
		repository:    repo,
		maxConcurrent: maxConcurrent,
	}
}

// Window builds a time window using the downloader's configured tolerance.
func (d *Downloader) Window(start, end time.Time) (TimeWindow, error) {
	return NewTimeWindow(start, end, d.tolerance)
}

// ListFiles returns the names of every remote file whose observation start
// time falls inside the tolerance-expanded window, in directory order as the
// locator enumerates directories.
func (d *Downloader) ListFiles(ctx context.Context, window TimeWindow) ([]string, error) {
	lo, hi := window.Expanded()

	var files []string
	for _, dirPath := range d.locator.GetPaths(lo, hi) {
		names, err := d.source.ListFiles(ctx, dirPath)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if !d.locator.Match(path.Base(name)) {
				continue
			}
			ts, err := d.locator.GetTimestamp(path.Base(name))
			if err != nil {
				return nil, err
			}
			if ts.Before(lo) || ts.After(hi) {
				continue
			}
			files = append(files, name)
		}
	}

	logger.Debug("discovered files", logger.Fields{
		"from":  lo.Format(time.RFC3339),
		"to":    hi.Format(time.RFC3339),
		"files": len(files),
	})
	return files, nil
}

// GetFiles retrieves the named files, skipping the ones already stored.
// Results come back in input order. Retrieval runs on a bounded worker pool;
// the first error cancels the remaining work and is returned. Duplicate names
// in the batch are downloaded at most once.
func (d *Downloader) GetFiles(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	sem := make(chan struct{}, d.maxConcurrent)

	for i, file := range files {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			defer func() { <-sem }()

			status, err := d.getFile(ctx, file)
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			results[i] = Result{File: file, Status: status}
		}(i, file)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// DownloadFiles discovers and retrieves in one step.
func (d *Downloader) DownloadFiles(ctx context.Context, window TimeWindow) ([]Result, error) {
	files, err := d.ListFiles(ctx, window)
	if err != nil {
		return nil, err
	}
	return d.GetFiles(ctx, files)
}

// getFile collapses concurrent requests for the same path into a single
// check-then-fetch, so a path appearing twice in a batch is downloaded once.
func (d *Downloader) getFile(ctx context.Context, file string) (Status, error) {
	v, err, _ := d.group.Do(file, func() (interface{}, error) {
		return d.fetchFile(ctx, file)
	})
	if err != nil {
		return StatusUnknown, err
	}
	return v.(Status), nil
}

func (d *Downloader) fetchFile(ctx context.Context, file string) (Status, error) {
	if d.repository.Exists(file) {
		logger.Debug("file already present", logger.Fields{"file": file})
		return StatusAlreadyPresent, nil
	}

	data, err := d.source.DownloadFile(ctx, file)
	if err != nil {
		return StatusUnknown, err
	}

	if err := d.repository.Save(file, data); err != nil {
		// Lost a race with another writer outside this process.
		if errors.Is(err, pkgerrors.ErrFileExists) {
			return StatusAlreadyPresent, nil
		}
		return StatusUnknown, err
	}

	logger.Info("fetched file", logger.Fields{"file": file, "bytes": len(data)})
	return StatusFetched, nil
}
