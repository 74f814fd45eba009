package id

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a ULID string. IDs made in the same millisecond stay
// lexicographically increasing, so they sort by creation time.
func New() string {
	return ulid.Make().String()
}

// Time returns the creation time encoded in an id returned by New.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse id %q: %w", s, err)
	}
	return ulid.Time(u.Time()).UTC(), nil
}
