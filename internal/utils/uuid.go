package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7 so log entries of one run sort
// by start time. A random v4 is returned if the v7 clock read fails.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
