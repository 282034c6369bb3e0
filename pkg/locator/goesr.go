package locator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wxtools/satdl/pkg/errors"
)

// GOESRConfig configures a locator for one GOES-R Series imagery product.
// The dataset directories hold a single product per tree, so only one product
// name and one origin may be given; modes are derived from the scene, and
// channels apply only to single-band products.
type GOESRConfig struct {
	Product  string   // product name, e.g. "Rad", "CMIP", "MCMIP", "LCFA", "SST"
	Scene    string   // "F", "C", "M1" or "M2"; empty for GLM products
	Channels []string // band identifiers, e.g. "C08", "C13"; only for channel products
	Origin   string   // satellite identifier, e.g. "G16"
}

const goesrFileExtension = `\.nc`

// Satellites in the GOES-R Series are identified by the following IDs.
var goesrOrigins = map[string]string{
	"G16": "goes16",
	"G17": "goes17",
	"G18": "goes18",
}

// Available scenes for GOES-R ABI products.
//
// NOTE: In its strictest sense, "Contiguous United States" refers to the
// lower 48 states in North America (including the District of Columbia),
// and "Continental United States" refers to 49 states (including Alaska
// and the District of Columbia).
var goesrScenes = map[string]string{
	"F":  "Full Disk",
	"C":  "CONUS (Continental United States)",
	"M1": "Mesoscale (Domain 1)",
	"M2": "Mesoscale (Domain 2)",
}

// Scene tags as they appear in filenames and directory names; both mesoscale
// domains share the "M" tag.
var goesrSceneTags = map[string]string{
	"F":  "F",
	"C":  "C",
	"M1": "M",
	"M2": "M",
}

// channelRule says how a product relates to the channel dimension.
type channelRule int

const (
	channelNone     channelRule = iota // product carries no channel tag
	channelRequired                    // caller must pick at least one channel
	channelImplied                     // product fixes its channels itself
)

// goesrProduct is one row of the GOES-R compatibility table.
type goesrProduct struct {
	instrument string
	level      string
	channels   channelRule
	implied    []string // channels forced by the product, for channelImplied
	scenes     []string // allowed scenes; nil allows every ABI scene
	origins    []string // allowed origins; nil allows every origin
	desc       string
}

var (
	sceneCF = []string{"C", "F"}
	sceneF  = []string{"F"}
	sceneFM = []string{"F", "M1", "M2"}

	originG16G17 = []string{"G16", "G17"}
	originG16G18 = []string{"G16", "G18"}

	// DMW supports an extra channel on the larger scenes.
	dmwChannelsCF = []string{"C02", "C07", "C08", "C09", "C10", "C14"}
	dmwChannelsM  = []string{"C02", "C07", "C08", "C09", "C10"}
)

// goesrProducts is the compatibility table for all supported GOES-R products.
// Primary products keep their channel requirement; derived products restrict
// scenes and origins where the upstream archive does.
var goesrProducts = map[string]goesrProduct{
	// Primary ABI products.
	"Rad":   {instrument: "ABI", level: "L1b", channels: channelRequired, desc: "Radiance"},
	"CMIP":  {instrument: "ABI", level: "L2", channels: channelRequired, desc: "Cloud and Moisture Imagery Product"},
	"MCMIP": {instrument: "ABI", level: "L2", desc: "Multi-band Cloud and Moisture Imagery Product"},

	// Derived motion winds.
	"DMW":  {instrument: "ABI", level: "L2", channels: channelRequired, desc: "Derived Motion Winds"},
	"DMWV": {instrument: "ABI", level: "L2", channels: channelImplied, implied: []string{"C08"}, desc: "Derived Motion WV Winds"},

	// Derived ABI products.
	"ACHA":    {instrument: "ABI", level: "L2", desc: "Cloud Top Height"},
	"ACHA2KM": {instrument: "ABI", level: "L2", origins: originG16G18, desc: "Cloud Top Height (2km)"},
	"ACHP2KM": {instrument: "ABI", level: "L2", origins: originG16G18, desc: "Cloud Top Pressure (2km)"},
	"ACHT":    {instrument: "ABI", level: "L2", scenes: sceneFM, desc: "Cloud Top Temperature"},
	"ACM":     {instrument: "ABI", level: "L2", desc: "Clear Sky Mask"},
	"ACTP":    {instrument: "ABI", level: "L2", desc: "Cloud Top Phase"},
	"ADP":     {instrument: "ABI", level: "L2", desc: "Aerosol Detection Product"},
	"AICE":    {instrument: "ABI", level: "L2", scenes: sceneF, desc: "Ice Concentration and Extent"},
	"AITA":    {instrument: "ABI", level: "L2", scenes: sceneF, desc: "Ice Age and Thickness"},
	"AOD":     {instrument: "ABI", level: "L2", scenes: sceneCF, desc: "Aerosol Optical Depth"},
	"BRF":     {instrument: "ABI", level: "L2", desc: "Bidirectional Reflectance Factor"},
	"CCL":     {instrument: "ABI", level: "L2", origins: originG16G18, desc: "Cloud Cover Layers"},
	"COD":     {instrument: "ABI", level: "L2", scenes: sceneCF, desc: "Cloud Optical Depth"},
	"COD2KM":  {instrument: "ABI", level: "L2", scenes: sceneF, origins: originG16G18, desc: "Cloud Optical Depth (2km)"},
	"CPS":     {instrument: "ABI", level: "L2", desc: "Cloud Particle Size"},
	"CTP":     {instrument: "ABI", level: "L2", scenes: sceneCF, desc: "Cloud Top Pressure"},
	"DSI":     {instrument: "ABI", level: "L2", desc: "Derived Stability Indices"},
	"DSR":     {instrument: "ABI", level: "L2", desc: "Downward Shortwave Radiation"},
	"FDC":     {instrument: "ABI", level: "L2", desc: "Fire (Hot Spot Characterization)"},
	"FSC":     {instrument: "ABI", level: "L2", origins: originG16G18, desc: "Fractional Snow Cover"},
	"LSA":     {instrument: "ABI", level: "L2", desc: "Land Surface Albedo"},
	"LST":     {instrument: "ABI", level: "L2", desc: "Land Surface Temperature"},
	"LST2KM":  {instrument: "ABI", level: "L2", scenes: sceneF, desc: "Land Surface Temperature (2km)"},
	"LVMP":    {instrument: "ABI", level: "L2", desc: "Legacy Vertical Moisture Profile"},
	"LVTP":    {instrument: "ABI", level: "L2", desc: "Legacy Vertical Temperature Profile"},
	"RRQPE":   {instrument: "ABI", level: "L2", scenes: sceneF, desc: "Rainfall Rate (QPE)"},
	"RSR":     {instrument: "ABI", level: "L2", scenes: sceneCF, desc: "Reflected Shortwave Radiation"},
	"SST":     {instrument: "ABI", level: "L2", scenes: sceneF, desc: "Sea Surface Temperature"},
	"TPW":     {instrument: "ABI", level: "L2", desc: "Total Precipitable Water"},
	"VAA":     {instrument: "ABI", level: "L2", scenes: sceneF, origins: originG16G17, desc: "Volcanic Ash (Detection and Height)"},

	// GLM products. Lightning data is not organized by scene.
	"LCFA": {instrument: "GLM", level: "L2", desc: "Lightning Cluster-Filter Algorithm"},
}

// ABI channels C01 through C16.
var goesrChannels = func() map[string]struct{} {
	channels := make(map[string]struct{}, 16)
	for i := 1; i <= 16; i++ {
		channels[fmt.Sprintf("C%02d", i)] = struct{}{}
	}
	return channels
}()

// NewGOESR builds a product locator for the GOES-R Series imagery dataset.
// Directories are organized by hour; filenames carry start/end/creation
// timestamps. All token validation happens here, before any network access.
func NewGOESR(cfg GOESRConfig) (ProductLocator, error) {
	if _, ok := goesrOrigins[cfg.Origin]; !ok {
		return nil, errors.Wrapf(errors.ErrInvalidToken,
			"origin '%s', available origins: %v", cfg.Origin, sortedKeys(goesrOrigins))
	}

	product, ok := goesrProducts[cfg.Product]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidToken,
			"product '%s', available products: %v", cfg.Product, sortedKeys(goesrProducts))
	}

	if err := validateGOESRScene(cfg, product); err != nil {
		return nil, err
	}

	channels, err := resolveGOESRChannels(cfg, product)
	if err != nil {
		return nil, err
	}

	if product.origins != nil && !slices.Contains(product.origins, cfg.Origin) {
		return nil, errors.Wrapf(errors.ErrInvalidCombination,
			"origin '%s' for product '%s', supported origins: %v",
			cfg.Origin, cfg.Product, product.origins)
	}

	var modes []string
	if product.instrument == "ABI" {
		// Mode 4 scans are only taken for the full disk.
		modes = []string{"M3", "M6"}
		if cfg.Scene == "F" {
			modes = []string{"M3", "M4", "M6"}
		}
	}

	productTag := product.instrument + "-" + product.level + "-" + cfg.Product + goesrSceneTags[cfg.Scene]

	prefix := "OR_" + productTag
	if modeChannel := sortedAlternation(modes) + sortedAlternation(channels); modeChannel != "" {
		prefix += "-" + modeChannel
	}
	prefix += "_" + cfg.Origin

	codec := julianCodec{}
	timestamp := "_s(" + codec.pattern() + ")_e" + codec.pattern() + "_c" + codec.pattern()

	return &productLocator{
		pattern:     newPattern(prefix, goesrFileExtension, codec, timestamp),
		granularity: Hourly,
		formatPath:  goesrPath,
		baseURLs: map[string]BaseURL{
			BackendAWS: {URL: "s3://noaa-" + goesrOrigins[cfg.Origin] + "/" + productTag + "/"},
		},
	}, nil
}

func validateGOESRScene(cfg GOESRConfig, product goesrProduct) error {
	if product.instrument == "GLM" {
		if cfg.Scene != "" {
			return errors.Wrapf(errors.ErrInvalidCombination,
				"product '%s' does not take a scene, got '%s'", cfg.Product, cfg.Scene)
		}
		return nil
	}

	if _, ok := goesrScenes[cfg.Scene]; !ok {
		return errors.Wrapf(errors.ErrInvalidToken,
			"scene '%s', available scenes: %v", cfg.Scene, sortedKeys(goesrScenes))
	}
	if product.scenes != nil && !slices.Contains(product.scenes, cfg.Scene) {
		return errors.Wrapf(errors.ErrInvalidCombination,
			"scene '%s' for product '%s', supported scenes: %v",
			cfg.Scene, cfg.Product, product.scenes)
	}
	return nil
}

func resolveGOESRChannels(cfg GOESRConfig, product goesrProduct) ([]string, error) {
	switch product.channels {
	case channelNone:
		if len(cfg.Channels) > 0 {
			return nil, errors.Wrapf(errors.ErrInvalidCombination,
				"channels %v for product '%s', which takes no channel specification",
				cfg.Channels, cfg.Product)
		}
		return nil, nil

	case channelImplied:
		if len(cfg.Channels) > 0 {
			return nil, errors.Wrapf(errors.ErrInvalidCombination,
				"channels %v for product '%s', whose channels are fixed to %v",
				cfg.Channels, cfg.Product, product.implied)
		}
		return product.implied, nil

	default: // channelRequired
		if len(cfg.Channels) == 0 {
			return nil, errors.Wrapf(errors.ErrInvalidCombination,
				"product '%s' requires a channel specification", cfg.Product)
		}
		allowed := goesrChannels
		if cfg.Product == "DMW" {
			// Channel 14 winds exist only on the larger scenes.
			set := dmwChannelsM
			if slices.Contains(sceneCF, cfg.Scene) {
				set = dmwChannelsCF
			}
			allowed = make(map[string]struct{}, len(set))
			for _, ch := range set {
				allowed[ch] = struct{}{}
			}
		}
		for _, ch := range cfg.Channels {
			if _, ok := allowed[ch]; !ok {
				return nil, errors.Wrapf(errors.ErrInvalidToken,
					"channel '%s' for product '%s' scene '%s', supported channels: %v",
					ch, cfg.Product, cfg.Scene, slices.Sorted(maps.Keys(allowed)))
			}
		}
		return cfg.Channels, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
