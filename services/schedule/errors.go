package schedule

import "errors"

var (
	ErrInvalidDuration    = errors.New("duration must be a positive multiple of the slot step")
	ErrInvalidRangeSyntax = errors.New("invalid hour range syntax")
	ErrInvalidLabel       = errors.New("invalid time label")
	ErrInvalidStep        = errors.New("slot step must be positive")
)
