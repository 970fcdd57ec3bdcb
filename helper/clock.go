package helper

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source for validation, tokens and the scheduler. Tests swap in a fake.
var Clock clockwork.Clock = clockwork.NewRealClock()

func Now() time.Time {
	return Clock.Now()
}
