package downloader

import (
	"context"

	"github.com/wxtools/satdl/internal/logger"
	"github.com/wxtools/satdl/pkg/config"
	"github.com/wxtools/satdl/pkg/datasource"
	"github.com/wxtools/satdl/pkg/locator"
	"github.com/wxtools/satdl/pkg/repository"
)

// NewFromConfig wires a downloader for loc and backend entirely from
// application settings: the log level, listing cache, HTTP timeout, repository
// directory, worker bound and time tolerance all come from cfg. The remote
// endpoint is probed during construction, so an unreachable backend fails
// here.
func NewFromConfig(ctx context.Context, loc locator.ProductLocator, backend datasource.Backend, cfg *config.Config) (*Downloader, error) {
	logger.InitLogger(cfg.Settings.LogLevel)

	src, err := datasource.New(ctx, loc, backend, datasource.Options{
		CacheTTL:        cfg.Settings.CacheTTL,
		CacheMaxEntries: cfg.Settings.CacheMaxEntries,
		HTTPTimeout:     cfg.Settings.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(cfg.Settings.RepositoryDir)
	if err != nil {
		return nil, err
	}

	d := New(loc, src, repo, cfg.Settings.MaxConcurrent)
	d.tolerance = cfg.Settings.TimeTolerance
	return d, nil
}
