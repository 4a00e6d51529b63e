package domain

import (
	"fmt"
	"time"
)

const (
	UnknownIdle     = "*"
	UnknownTerminal = "unknown"
	NeverLoggedIn   = "never"

	longLoginLayout  = "Monday, 02 January 2006 15:04:05"
	shortLoginLayout = "Jan 02 15:04"
)

// FormatIdleLong drops leading zero units: "2 minutes 5 seconds idle".
func FormatIdleLong(idle time.Duration) string {
	total := wholeSeconds(idle)
	hours := total / 3600
	minutes := total / 60 % 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%d hours %d minutes %d seconds idle", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d minutes %d seconds idle", minutes, seconds)
	default:
		return fmt.Sprintf("%d seconds idle", seconds)
	}
}

// FormatIdleShort rounds up to whole minutes and switches to H:MM from one hour on.
func FormatIdleShort(idle time.Duration) string {
	minutes := (wholeSeconds(idle) + 59) / 60
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
	}

	return fmt.Sprintf("%d", minutes)
}

func FormatLoginTime(at time.Time, long bool) string {
	if at.IsZero() {
		return NeverLoggedIn
	}
	if long {
		return at.Local().Format(longLoginLayout)
	}

	return at.Local().Format(shortLoginLayout)
}

func wholeSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}

	return int64(d / time.Second)
}
