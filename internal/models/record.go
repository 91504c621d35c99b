// ABOUTME: Shared record helpers for fitness tracking collections.
// ABOUTME: Logged dates are plain YYYY-MM-DD strings, parsed lazily.
package models

import "time"

// DateLayout is the format for user-logged dates.
// Dates are stored as plain strings; aggregations that need real dates
// parse them and skip records that fail to parse.
const DateLayout = "2006-01-02"

// ParseDate parses a logged date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current date in log format.
func Today() string {
	return time.Now().Format(DateLayout)
}
