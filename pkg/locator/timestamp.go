package locator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wxtools/satdl/pkg/errors"
)

// timeCodec converts between a filename timestamp field and a UTC instant.
type timeCodec interface {
	parse(s string) (time.Time, error)
	format(t time.Time) string
	pattern() string
}

// layoutCodec handles timestamp fields expressible as a Go reference layout,
// such as the GridSat "2006.01.02.15" convention.
type layoutCodec struct {
	layout string
	regexp string
}

func (c layoutCodec) parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(c.layout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrTimestampParse, "'%s': %v", s, err)
	}
	return t, nil
}

func (c layoutCodec) format(t time.Time) string {
	return t.UTC().Format(c.layout)
}

func (c layoutCodec) pattern() string {
	return c.regexp
}

// julianCodec handles the GOES-R 14-digit timestamp: four-digit year,
// three-digit day of year, time of day, and tenth of second. Go's time
// package has no day-of-year parsing verb, so the field is decoded by hand.
type julianCodec struct{}

func (julianCodec) parse(s string) (time.Time, error) {
	if len(s) != 14 {
		return time.Time{}, errors.Wrapf(errors.ErrTimestampParse,
			"'%s': expected 14 digits, got %d", s, len(s))
	}
	fields := make([]int, 6)
	for i, span := range [6][2]int{{0, 4}, {4, 7}, {7, 9}, {9, 11}, {11, 13}, {13, 14}} {
		n, err := strconv.Atoi(s[span[0]:span[1]])
		if err != nil {
			return time.Time{}, errors.Wrapf(errors.ErrTimestampParse, "'%s': %v", s, err)
		}
		fields[i] = n
	}
	year, yday, hour, minute, sec, tenth := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]
	if yday < 1 || yday > 366 {
		return time.Time{}, errors.Wrapf(errors.ErrTimestampParse,
			"'%s': day of year %d out of range", s, yday)
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, errors.Wrapf(errors.ErrTimestampParse,
			"'%s': time of day out of range", s)
	}
	t := time.Date(year, time.January, 1, hour, minute, sec, tenth*int(100*time.Millisecond), time.UTC)
	return t.AddDate(0, 0, yday-1), nil
}

func (julianCodec) format(t time.Time) string {
	t = t.UTC()
	tenth := t.Nanosecond() / int(100*time.Millisecond)
	return fmt.Sprintf("%04d%03d%02d%02d%02d%01d",
		t.Year(), t.YearDay(), t.Hour(), t.Minute(), t.Second(), tenth)
}

func (julianCodec) pattern() string {
	return `\d{14}`
}

// pathFormat renders a truncated instant as a directory path fragment.
type pathFormat func(t time.Time) string

func layoutPath(layout string) pathFormat {
	return func(t time.Time) string {
		return t.UTC().Format(layout)
	}
}

// goesrPath renders the GOES-R year/day-of-year/hour directory convention.
func goesrPath(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d/%03d/%02d", t.Year(), t.YearDay(), t.Hour())
}
