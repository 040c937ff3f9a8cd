package reminder

import "errors"

var (
	ErrRunning         = errors.New("reminder is running")
	ErrInvalidDuration = errors.New("phase duration must be at least one minute")
)
