package session

import (
	"regexp"
	"strconv"
)

// Time unit conversions in seconds.
const (
	MinuteSeconds int64 = 60
	HourSeconds   int64 = 3600
	DaySeconds    int64 = 86400
	WeekSeconds   int64 = 604800
)

var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseExpiry converts an expiry policy string ("30s", "15m", "1h",
// "7d") into whole seconds. An unparseable string falls back to one
// week instead of failing the request: a bad config value must not take
// the login path down.
func ParseExpiry(expiresIn string) int64 {
	m := expiryPattern.FindStringSubmatch(expiresIn)
	if m == nil {
		return WeekSeconds
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Digits too large for int64, treat like any other bad input.
		return WeekSeconds
	}

	switch m[2] {
	case "s":
		return value
	case "m":
		return value * MinuteSeconds
	case "h":
		return value * HourSeconds
	case "d":
		return value * DaySeconds
	default:
		return WeekSeconds
	}
}
