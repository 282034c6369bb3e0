package datasource

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wxtools/satdl/internal/logger"
	"github.com/wxtools/satdl/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "satdl/1.0"

	acceptHTML   = "text/html"
	acceptNetCDF = "application/x-netcdf4"
)

// HTTPDatasource lists remote directories by fetching their HTML index
// documents and extracting anchor targets, the convention used by the NOAA
// NCEI archive servers.
type HTTPDatasource struct {
	baseURL   *url.URL
	client    *http.Client
	userAgent string
	cache     *Cache
	group     singleflight.Group
}

// NewHTTP creates an HTTP datasource rooted at baseURL. The base URL is
// probed with a HEAD request before the datasource is returned, so a dead
// host or a missing dataset root fails construction.
func NewHTTP(ctx context.Context, baseURL string, opts Options) (*HTTPDatasource, error) {
	parts, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL '%s'", baseURL)
	}

	timeout := opts.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	ds := &HTTPDatasource{
		baseURL:   parts,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		cache:     NewCache(opts.CacheTTL, opts.CacheMaxEntries),
	}
	if err := ds.probe(ctx); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *HTTPDatasource) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ds.baseURL.String(), http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", ds.userAgent)

	resp, err := ds.client.Do(req)
	if err != nil {
		return errors.Wrapf(errors.ErrUnreachable, "'%s': %v", ds.baseURL, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(errors.ErrUnreachable,
			"'%s' does not exist or you have no access: HTTP %d", ds.baseURL, resp.StatusCode)
	}
	return nil
}

// ListFiles fetches the index document for dirPath and returns the anchor
// targets that resolve inside that directory, named relative to the base URL
// (keeping the dirPath prefix). A missing directory yields an empty list
// without caching it; a present-but-empty index is cached normally.
func (ds *HTTPDatasource) ListFiles(ctx context.Context, dirPath string) ([]string, error) {
	if files, ok := ds.cache.Get(dirPath); ok {
		logger.Debug("listing served from cache", logger.Fields{"dir": dirPath})
		return files, nil
	}

	result, err, _ := ds.group.Do(dirPath, func() (interface{}, error) {
		return ds.listRemote(ctx, dirPath)
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (ds *HTTPDatasource) listRemote(ctx context.Context, dirPath string) ([]string, error) {
	dirURL := joinURL(ds.baseURL.String(), dirPath)

	doc, found, err := ds.fetchIndex(ctx, dirURL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrListingFailed, "'%s': %v", dirPath, err)
	}
	if !found {
		return []string{}, nil
	}

	parsedDir, err := url.Parse(dirURL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrListingFailed, "'%s': %v", dirPath, err)
	}

	base := ds.baseURL.String()
	var files []string
	for _, href := range collectHrefs(doc) {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		resolved := parsedDir.ResolveReference(ref)
		if resolved.RawQuery != "" || resolved.Fragment != "" {
			continue
		}
		target := resolved.String()
		// Links leading out of the directory (parents, sort toggles,
		// site navigation) are not files of this listing.
		if !strings.HasPrefix(target, dirURL) || target == dirURL {
			continue
		}
		files = append(files, strings.TrimPrefix(target, base))
	}

	logger.Debug("listed remote directory", logger.Fields{"dir": dirPath, "files": len(files)})
	ds.cache.Put(dirPath, files)
	return files, nil
}

func (ds *HTTPDatasource) fetchIndex(ctx context.Context, dirURL string) (*html.Node, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dirURL, http.NoBody)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", ds.userAgent)
	req.Header.Set("Accept", acceptHTML)

	resp, err := ds.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusForbidden:
		return nil, false, nil
	default:
		return nil, false, errors.Wrapf(errors.ErrListingFailed, "HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// DownloadFile fetches the file at filePath into memory.
func (ds *HTTPDatasource) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	fileURL := joinURL(ds.baseURL.String(), filePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': %v", filePath, err)
	}
	req.Header.Set("User-Agent", ds.userAgent)
	req.Header.Set("Accept", acceptNetCDF)

	resp, err := ds.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': %v", filePath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': HTTP %d", filePath, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRetrievalFailed, "'%s': %v", filePath, err)
	}
	return data, nil
}

// ClearCache drops the cached listing for dirPath, or every listing when
// dirPath is empty.
func (ds *HTTPDatasource) ClearCache(dirPath string) error {
	if dirPath == "" {
		ds.cache.Clear()
		return nil
	}
	return ds.cache.Invalidate(dirPath)
}

// collectHrefs walks the parse tree and gathers every anchor href.
func collectHrefs(doc *html.Node) []string {
	var hrefs []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "a" {
			for _, attr := range node.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return hrefs
}
