package scheduler

import "errors"

// ErrInvalidGrade indicates a grade outside the 0-5 ordinal range.
var ErrInvalidGrade = errors.New("invalid grade")

// ErrUnknownItem indicates an item id that is not registered.
var ErrUnknownItem = errors.New("unknown item")

// ErrUnknownSection indicates a registration against a section that is
// not in the exam table.
var ErrUnknownSection = errors.New("unknown section")
