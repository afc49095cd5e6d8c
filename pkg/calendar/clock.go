package calendar

import "time"

// Clock supplies the current real-world day
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Today() Date {
	return DateOf(time.Now())
}

// FixedClock always reports the same day
type FixedClock Date

func (c FixedClock) Today() Date {
	return Date(c)
}
