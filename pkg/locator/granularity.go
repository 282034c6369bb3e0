package locator

import "time"

// Granularity is the fixed time unit by which a dataset's remote directories
// are organized.
type Granularity int

const (
	Hourly Granularity = iota
	Monthly
	Yearly
)

// Truncate returns t rounded down to the start of the granularity interval
// containing it.
func (g Granularity) Truncate(t time.Time) time.Time {
	switch g {
	case Hourly:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
}

// Next returns the start of the interval following the one containing t.
// t is expected to be truncated already; month and year rollover is explicit
// so a December bucket advances into January of the following year.
func (g Granularity) Next(t time.Time) time.Time {
	switch g {
	case Hourly:
		return t.Add(time.Hour)
	case Monthly:
		year, month := t.Year(), t.Month()+1
		if month > time.December {
			month = time.January
			year++
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	}
}

func (g Granularity) String() string {
	switch g {
	case Hourly:
		return "hourly"
	case Monthly:
		return "monthly"
	default:
		return "yearly"
	}
}
