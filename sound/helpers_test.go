package sound

import "time"

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func secondsDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
