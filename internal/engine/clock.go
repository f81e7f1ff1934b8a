package engine

import "time"

// Clock - источник монотонного времени для кулдаунов
type Clock interface {
	Now() time.Time
}

// SystemClock - time.Now (несет монотонные показания)
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
