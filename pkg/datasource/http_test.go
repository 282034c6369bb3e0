package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxtools/satdl/pkg/errors"
)

const indexPage = `<html><body>
<h1>Index of /access/1980</h1>
<a href="?C=M;O=A">Last modified</a>
<a href="../">Parent Directory</a>
<a href="GRIDSAT-B1.1980.01.01.00.v02r01.nc">GRIDSAT-B1.1980.01.01.00.v02r01.nc</a>
<a href="GRIDSAT-B1.1980.01.01.03.v02r01.nc">GRIDSAT-B1.1980.01.01.03.v02r01.nc</a>
<a href="/robots.txt">robots</a>
<a href="#top">top</a>
</body></html>`

func newIndexServer(t *testing.T, listHits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/access/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/access/":
			w.WriteHeader(http.StatusOK)
		case "/access/1980/":
			if r.Method == http.MethodGet {
				listHits.Add(1)
			}
			_, _ = fmt.Fprint(w, indexPage)
		case "/access/1980/GRIDSAT-B1.1980.01.01.00.v02r01.nc":
			_, _ = w.Write([]byte("netcdf bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTP_ProbesBaseURL(t *testing.T) {
	var hits atomic.Int32
	srv := newIndexServer(t, &hits)

	t.Run("reachable base", func(t *testing.T) {
		ds, err := NewHTTP(context.Background(), srv.URL+"/access/", Options{})
		require.NoError(t, err)
		require.NotNil(t, ds)
	})

	t.Run("missing base", func(t *testing.T) {
		_, err := NewHTTP(context.Background(), srv.URL+"/nope/", Options{})
		assert.ErrorIs(t, err, errors.ErrUnreachable)
	})
}

func TestHTTP_ListFiles(t *testing.T) {
	var hits atomic.Int32
	srv := newIndexServer(t, &hits)

	ds, err := NewHTTP(context.Background(), srv.URL+"/access/", Options{CacheTTL: time.Minute})
	require.NoError(t, err)

	files, err := ds.ListFiles(context.Background(), "1980/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1980/GRIDSAT-B1.1980.01.01.00.v02r01.nc",
		"1980/GRIDSAT-B1.1980.01.01.03.v02r01.nc",
	}, files)
}

func TestHTTP_ListFiles_CachesListings(t *testing.T) {
	var hits atomic.Int32
	srv := newIndexServer(t, &hits)

	ds, err := NewHTTP(context.Background(), srv.URL+"/access/", Options{CacheTTL: time.Minute})
	require.NoError(t, err)

	first, err := ds.ListFiles(context.Background(), "1980/")
	require.NoError(t, err)
	second, err := ds.ListFiles(context.Background(), "1980/")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "second listing must be served from cache")

	require.NoError(t, ds.ClearCache("1980/"))
	_, err = ds.ListFiles(context.Background(), "1980/")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load(), "invalidation must force a refetch")
}

func TestHTTP_ListFiles_MissingDirectoryNotCached(t *testing.T) {
	var hits atomic.Int32
	srv := newIndexServer(t, &hits)

	ds, err := NewHTTP(context.Background(), srv.URL+"/access/", Options{CacheTTL: time.Minute})
	require.NoError(t, err)

	files, err := ds.ListFiles(context.Background(), "2099/")
	require.NoError(t, err)
	assert.Empty(t, files)

	// The empty result must not stick; the directory may appear later.
	assert.ErrorIs(t, ds.ClearCache("2099/"), errors.ErrCacheMiss)
}

func TestHTTP_DownloadFile(t *testing.T) {
	var hits atomic.Int32
	srv := newIndexServer(t, &hits)

	ds, err := NewHTTP(context.Background(), srv.URL+"/access/", Options{})
	require.NoError(t, err)

	data, err := ds.DownloadFile(context.Background(), "1980/GRIDSAT-B1.1980.01.01.00.v02r01.nc")
	require.NoError(t, err)
	assert.Equal(t, []byte("netcdf bytes"), data)

	_, err = ds.DownloadFile(context.Background(), "1980/GRIDSAT-B1.1980.12.31.21.v02r01.nc")
	assert.ErrorIs(t, err, errors.ErrRetrievalFailed)
}
