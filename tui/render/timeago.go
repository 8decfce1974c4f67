package render

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInMin  = 60
	secondsInHour = 60 * 60
	secondsInDay  = 60 * 60 * 24
)

// TimeAgo describes how long before now then was, in the coarsest unit
// that applies. Values are rounded half to even and never singularised
// ("1 days ago"). Future times read as "0 mins ago" or a negative count.
func TimeAgo(now, then time.Time) string {
	diff := now.Sub(then).Seconds()

	switch {
	case diff >= secondsInDay:
		return fmt.Sprintf("%d days ago", roundCount(diff/secondsInDay))
	case diff >= secondsInHour:
		return fmt.Sprintf("%d hours ago", roundCount(diff/secondsInHour))
	default:
		return fmt.Sprintf("%d mins ago", roundCount(diff/secondsInMin))
	}
}

func roundCount(f float64) int64 {
	return int64(math.RoundToEven(f))
}
