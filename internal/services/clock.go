package services

import "time"

// Clock supplies the current time to the services.
type Clock func() time.Time

func NewClock() Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}
