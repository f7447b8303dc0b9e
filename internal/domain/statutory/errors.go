package statutory

import "errors"

var (
	ErrEmptyBracketTable       = errors.New("bracket table is empty")
	ErrBracketsNotContiguous   = errors.New("bracket table has a gap or overlap")
	ErrBracketsNotAscending    = errors.New("bracket bounds must ascend")
	ErrUnboundedBracketNotLast = errors.New("open-ended bracket must be the last entry")
)
