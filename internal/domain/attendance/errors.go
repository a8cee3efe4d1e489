package attendance

import "errors"

// Cycle-policy rejections are user-facing and recoverable; the recorder
// wraps them with a message that includes the employee's name.
var (
	// ErrInvalidSequence means the day's history cannot precede the
	// requested check-in (strict mode: day must start with an entry).
	ErrInvalidSequence = errors.New("invalid check-in sequence")

	// ErrDailyLimitReached means the employee already completed today's
	// journey under strict mode.
	ErrDailyLimitReached = errors.New("daily attendance limit reached")
)
