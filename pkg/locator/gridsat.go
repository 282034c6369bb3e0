package locator

import (
	"fmt"
	"strings"

	"github.com/wxtools/satdl/pkg/errors"
)

// GridSat is the multi-decade geostationary archive family hosted at NOAA
// NCEI. Two datasets are supported: GridSat-B1 (global IR brightness
// temperature, one file per three hours, yearly directories) and
// GridSat-GOES/CONUS (per-satellite gridded imagery, monthly directories).

const gridsatFileExtension = `\.nc`

const (
	// B1LatestVersion is the default version requested for GridSat-B1.
	B1LatestVersion = "v02r01"
	// GCLatestVersion is the default version requested for GridSat-GOES/CONUS.
	GCLatestVersion = "v01"
)

var b1Versions = map[string]struct{}{"v02r01": {}}

var gcVersions = map[string]struct{}{"v01": {}}

// Satellites of the GOES 2nd generation (GOES-I to GOES-M) series covered by
// the GridSat-GOES/CONUS dataset.
var gcOrigins = func() map[string]string {
	origins := make(map[string]string, 8)
	for i := 8; i <= 15; i++ {
		origins[fmt.Sprintf("G%02d", i)] = fmt.Sprintf("goes%02d", i)
	}
	return origins
}()

// Scene IDs map to dataset group names, which double as directory names.
var gcSceneNames = map[string]string{
	"F": "GOES",
	"C": "CONUS",
}

// NewGridSatB1 builds a locator for the GridSat-B1 dataset. B1 files carry
// no origin tag; versions defaults to the latest published version.
func NewGridSatB1(versions ...string) (ProductLocator, error) {
	if len(versions) == 0 {
		versions = []string{B1LatestVersion}
	}
	for _, version := range versions {
		if _, ok := b1Versions[version]; !ok {
			return nil, errors.Wrapf(errors.ErrInvalidToken,
				"version '%s', supported versions: %v", version, sortedKeys(b1Versions))
		}
	}

	codec := layoutCodec{layout: "2006.01.02.15", regexp: `\d{4}\.\d{2}\.\d{2}\.\d{2}`}

	return &productLocator{
		pattern: newPattern(
			`GRIDSAT-B1\.`,
			`\.`+sortedAlternation(versions)+gridsatFileExtension,
			codec,
			"("+codec.pattern()+")",
		),
		granularity: Yearly,
		formatPath:  layoutPath("2006"),
		baseURLs: map[string]BaseURL{
			BackendAWS:  {URL: "s3://noaa-cdr-gridsat-b1-pds/data/"},
			BackendHTTP: {URL: "https://www.ncei.noaa.gov/data/geostationary-ir-channel-brightness-temperature-gridsat-b1/access/"},
		},
	}, nil
}

// NewGridSatGC builds a locator for the GridSat-GOES/CONUS dataset. The
// scene selects the dataset group ("F" for GOES, "C" for CONUS); one or more
// origins may be requested at once since all satellites share a directory.
func NewGridSatGC(scene string, origins []string, versions ...string) (ProductLocator, error) {
	name, ok := gcSceneNames[scene]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidToken,
			"scene '%s', available scenes: %v", scene, sortedKeys(gcSceneNames))
	}

	if len(origins) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidCombination,
			"dataset 'GridSat-%s' requires at least one origin", name)
	}
	originTags := make([]string, 0, len(origins))
	for _, origin := range origins {
		tag, ok := gcOrigins[origin]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidToken,
				"origin '%s', available origins: %v", origin, sortedKeys(gcOrigins))
		}
		originTags = append(originTags, tag)
	}

	if len(versions) == 0 {
		versions = []string{GCLatestVersion}
	}
	for _, version := range versions {
		if _, ok := gcVersions[version]; !ok {
			return nil, errors.Wrapf(errors.ErrInvalidToken,
				"version '%s', supported versions: %v", version, sortedKeys(gcVersions))
		}
	}

	codec := layoutCodec{layout: "2006.01.02.1504", regexp: `\d{4}\.\d{2}\.\d{2}\.\d{4}`}

	return &productLocator{
		pattern: newPattern(
			`GridSat-`+name+`\.`+sortedAlternation(originTags)+`\.`,
			`\.`+sortedAlternation(versions)+gridsatFileExtension,
			codec,
			"("+codec.pattern()+")",
		),
		granularity: Monthly,
		pathPrefix:  strings.ToLower(name) + "/",
		formatPath:  layoutPath("2006/01"),
		baseURLs: map[string]BaseURL{
			BackendHTTP: {URL: "https://www.ncei.noaa.gov/data/gridsat-goes/access/"},
		},
	}, nil
}
