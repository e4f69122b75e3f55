package auth

import (
	"strconv"
	"time"
)

// DefaultExpirySeconds is used whenever a duration expression is missing
// or malformed; callers always get a usable TTL.
const DefaultExpirySeconds = 3600

// ParseExpirySeconds converts a duration expression "<integer><unit>"
// with unit s, m, h or d into seconds. It never fails: anything it
// cannot parse yields DefaultExpirySeconds.
func ParseExpirySeconds(spec string) int {
	if len(spec) < 2 {
		return DefaultExpirySeconds
	}

	n, err := strconv.Atoi(spec[:len(spec)-1])
	if err != nil || n <= 0 {
		return DefaultExpirySeconds
	}

	switch spec[len(spec)-1] {
	case 's':
		return n
	case 'm':
		return n * 60
	case 'h':
		return n * 3600
	case 'd':
		return n * 86400
	}
	return DefaultExpirySeconds
}

// ExpiryDuration is ParseExpirySeconds as a time.Duration.
func ExpiryDuration(spec string) time.Duration {
	return time.Duration(ParseExpirySeconds(spec)) * time.Second
}
