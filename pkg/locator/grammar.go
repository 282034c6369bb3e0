package locator

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/wxtools/satdl/pkg/errors"
)

// Pattern is a compiled filename matcher for one product family. It combines
// a prefix (instrument/level/product/scene and optional mode/channel
// alternations), a timestamp sub-pattern with a single capture group, and a
// suffix (version alternation plus file extension).
//
// All alternation groups are sorted before compilation, so two patterns built
// from the same logical token sets compile to the same expression regardless
// of input order.
type Pattern struct {
	full  *regexp.Regexp // anchored, used by Match
	scan  *regexp.Regexp // unanchored, used to locate the timestamp capture
	codec timeCodec
}

func newPattern(prefix, suffix string, codec timeCodec, timestamp string) *Pattern {
	expr := prefix + timestamp + suffix
	return &Pattern{
		full:  regexp.MustCompile("^(?:" + expr + ")$"),
		scan:  regexp.MustCompile(expr),
		codec: codec,
	}
}

// Match reports whether name matches the full pattern.
func (p *Pattern) Match(name string) bool {
	return p.full.MatchString(name)
}

// Timestamp locates the timestamp field in name and converts it to a UTC
// instant. Exactly one occurrence of the pattern must be present; filenames
// that were not pre-filtered with Match typically fail here.
func (p *Pattern) Timestamp(name string) (time.Time, error) {
	found := p.scan.FindAllStringSubmatch(name, -1)
	if len(found) != 1 {
		return time.Time{}, errors.Wrapf(errors.ErrFilenameFormat,
			"expected 1 timestamp field in '%s', found %d", name, len(found))
	}
	return p.codec.parse(found[0][1])
}

// String returns the compiled (unanchored) expression. Useful for asserting
// pattern determinism.
func (p *Pattern) String() string {
	return p.scan.String()
}

// sortedAlternation builds a non-capturing alternation group from tokens,
// sorted lexicographically. Returns "" for an empty token set.
func sortedAlternation(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)
	return "(?:" + strings.Join(sorted, "|") + ")"
}
