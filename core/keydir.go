package core

import "time"

// KeyDirEntry is one stored record.
type KeyDirEntry struct {
	Value     string
	ExpiresAt int64 // Unix seconds; 0 means the record never expires
}

func (e KeyDirEntry) expired(now time.Time) bool {
	return e.ExpiresAt != 0 && now.Unix() >= e.ExpiresAt
}

// KeyDir maps keys to their current records.
type KeyDir map[string]KeyDirEntry

// expiresAt converts an xt parameter to an absolute time. Positive values
// are relative seconds, negative values an absolute epoch.
func expiresAt(xt int64, now time.Time) int64 {
	switch {
	case xt > 0:
		return now.Unix() + xt
	case xt < 0:
		return -xt
	default:
		return 0
	}
}
