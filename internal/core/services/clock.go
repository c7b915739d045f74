package services

import "time"

// Clock supplies the evaluation instant. Services read time only through it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
