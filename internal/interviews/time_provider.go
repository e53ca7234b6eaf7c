package interviews

import "time"

type timeProvider interface {
	Now() time.Time
}

type stdTime struct{}

// Now is truncated to milliseconds, the precision the store keeps.
func (stdTime) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
