package overtime

import "errors"

var (
	ErrOvertimeNotFound          = errors.New("overtime record not found")
	ErrInvalidCategory           = errors.New("invalid overtime category")
	ErrInconsistentInterval      = errors.New("overtime interval has negative duration")
	ErrOvertimeOverlap           = errors.New("overtime interval overlaps an existing request for the same date")
	ErrDailyOvertimeCapExceeded  = errors.New("daily overtime cap exceeded")
	ErrWeeklyOvertimeCapExceeded = errors.New("weekly overtime cap exceeded")
)
