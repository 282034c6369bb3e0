package locator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxtools/satdl/pkg/errors"
)

func TestNewGridSatB1(t *testing.T) {
	t.Run("defaults to latest version", func(t *testing.T) {
		loc, err := NewGridSatB1()
		require.NoError(t, err)
		assert.True(t, loc.Match("GRIDSAT-B1.1980.01.01.00.v02r01.nc"))
	})

	t.Run("unknown version is refused", func(t *testing.T) {
		_, err := NewGridSatB1("v99r99")
		assert.ErrorIs(t, err, errors.ErrInvalidToken)
	})
}

func TestGridSatB1_MatchAndTimestamp(t *testing.T) {
	loc, err := NewGridSatB1()
	require.NoError(t, err)

	name := "GRIDSAT-B1.1980.01.01.00.v02r01.nc"
	require.True(t, loc.Match(name))

	ts, err := loc.GetTimestamp(name)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), ts)

	tests := []struct {
		name     string
		filename string
	}{
		{"wrong version", "GRIDSAT-B1.1980.01.01.00.v01r01.nc"},
		{"wrong dataset", "GRIDSAT-GOA.1980.01.01.00.v02r01.nc"},
		{"minute field present", "GRIDSAT-B1.1980.01.01.0000.v02r01.nc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, loc.Match(tt.filename))
		})
	}
}

func TestGridSatB1_GetPaths(t *testing.T) {
	loc, err := NewGridSatB1()
	require.NoError(t, err)

	start := time.Date(1970, time.August, 23, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.August, 23, 0, 0, 0, 0, time.UTC)

	paths := loc.GetPaths(start, end)
	require.Len(t, paths, 51)
	assert.Equal(t, "1970/", paths[0])
	assert.Equal(t, "2020/", paths[50])
}

func TestNewGridSatGC_TokenValidation(t *testing.T) {
	tests := []struct {
		name        string
		scene       string
		origins     []string
		versions    []string
		expectedErr error
	}{
		{
			name:    "valid full scene",
			scene:   "F",
			origins: []string{"G12"},
		},
		{
			name:    "valid conus scene with several origins",
			scene:   "C",
			origins: []string{"G08", "G12", "G13"},
		},
		{
			name:        "unknown scene",
			scene:       "M1",
			origins:     []string{"G12"},
			expectedErr: errors.ErrInvalidToken,
		},
		{
			name:        "no origins",
			scene:       "F",
			origins:     nil,
			expectedErr: errors.ErrInvalidCombination,
		},
		{
			name:        "third-generation origin",
			scene:       "F",
			origins:     []string{"G16"},
			expectedErr: errors.ErrInvalidToken,
		},
		{
			name:        "unknown version",
			scene:       "F",
			origins:     []string{"G12"},
			versions:    []string{"v02"},
			expectedErr: errors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewGridSatGC(tt.scene, tt.origins, tt.versions...)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, loc)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, loc)
		})
	}
}

func TestGridSatGC_MatchAndTimestamp(t *testing.T) {
	loc, err := NewGridSatGC("F", []string{"G12"})
	require.NoError(t, err)

	name := "GridSat-GOES.goes12.1994.09.01.0000.v01.nc"
	require.True(t, loc.Match(name))

	ts, err := loc.GetTimestamp(name)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1994, time.September, 1, 0, 0, 0, 0, time.UTC), ts)

	assert.False(t, loc.Match("GridSat-GOES.goes13.1994.09.01.0000.v01.nc"), "unrequested origin")
	assert.False(t, loc.Match("GridSat-CONUS.goes12.1994.09.01.0000.v01.nc"), "wrong scene group")
}

func TestGridSatGC_PatternDeterminism(t *testing.T) {
	first, err := NewGridSatGC("F", []string{"G13", "G08", "G12"})
	require.NoError(t, err)
	second, err := NewGridSatGC("F", []string{"G08", "G12", "G13"})
	require.NoError(t, err)

	assert.Equal(t,
		first.(*productLocator).pattern.String(),
		second.(*productLocator).pattern.String())
}

func TestGridSatGC_GetPaths(t *testing.T) {
	loc, err := NewGridSatGC("C", []string{"G12"})
	require.NoError(t, err)

	t.Run("monthly directories carry the group prefix", func(t *testing.T) {
		at := time.Date(1994, time.September, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, []string{"conus/1994/09/"}, loc.GetPaths(at, at))
	})

	t.Run("december advances into january of the next year", func(t *testing.T) {
		start := time.Date(1994, time.December, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(1995, time.January, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, []string{"conus/1994/12/", "conus/1995/01/"}, loc.GetPaths(start, end))
	})
}

func TestGridSatGC_GetBaseURL(t *testing.T) {
	loc, err := NewGridSatGC("F", []string{"G12"})
	require.NoError(t, err)

	base, err := loc.GetBaseURL(BackendHTTP)
	require.NoError(t, err)
	assert.Equal(t, "https://www.ncei.noaa.gov/data/gridsat-goes/access/", base.URL)

	_, err = loc.GetBaseURL(BackendAWS)
	assert.ErrorIs(t, err, errors.ErrUnsupportedBackend)
}
