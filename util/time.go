package util

import (
	"fmt"
	"time"
)

// Node timestamps are UTC seconds with no zone suffix; tooling around the
// ecosystem sometimes appends Z or fractional seconds.

const ChainSec = "2006-01-02T15:04:05"

const ChainSec_z = "2006-01-02T15:04:05Z"

const ChainSec_milli = "2006-01-02T15:04:05.000"

const ChainSec_milli_z = "2006-01-02T15:04:05.000Z"

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(ChainSec, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(ChainSec_z, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(ChainSec_milli, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(ChainSec_milli_z, s)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("failed to parse %q as timestamp", s)
}
