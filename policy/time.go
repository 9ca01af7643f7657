package policy

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func newTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
