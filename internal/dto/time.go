package dto

import "time"

// FromEpoch converts epoch seconds to a UTC time.
func FromEpoch(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// FromEpochPtr converts optional epoch seconds to an optional UTC time.
func FromEpochPtr(seconds *int64) *time.Time {
	if seconds == nil {
		return nil
	}
	t := FromEpoch(*seconds)
	return &t
}
