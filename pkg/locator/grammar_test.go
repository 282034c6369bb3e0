package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxtools/satdl/pkg/errors"
)

func TestPattern_TimestampRequiresSingleField(t *testing.T) {
	codec := layoutCodec{layout: "2006.01.02.15", regexp: `\d{4}\.\d{2}\.\d{2}\.\d{2}`}
	pattern := newPattern(`GRIDSAT-B1\.`, `\.v02r01\.nc`, codec, "("+codec.pattern()+")")

	t.Run("single field parses", func(t *testing.T) {
		ts, err := pattern.Timestamp("GRIDSAT-B1.1980.01.01.00.v02r01.nc")
		require.NoError(t, err)
		assert.False(t, ts.IsZero())
	})

	t.Run("no field fails", func(t *testing.T) {
		_, err := pattern.Timestamp("README.txt")
		assert.ErrorIs(t, err, errors.ErrFilenameFormat)
	})

	t.Run("repeated field fails", func(t *testing.T) {
		name := "GRIDSAT-B1.1980.01.01.00.v02r01.nc GRIDSAT-B1.1980.01.01.03.v02r01.nc"
		_, err := pattern.Timestamp(name)
		assert.ErrorIs(t, err, errors.ErrFilenameFormat)
	})
}

func TestSortedAlternation(t *testing.T) {
	assert.Equal(t, "", sortedAlternation(nil))
	assert.Equal(t, "(?:C02)", sortedAlternation([]string{"C02"}))
	assert.Equal(t, "(?:C02|C08|C13)", sortedAlternation([]string{"C13", "C02", "C08"}))
}
