package domain

import "errors"

// Domain errors.
var (
	ErrEmptyInput    = errors.New("task text cannot be empty")
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidFilter = errors.New("invalid filter (want all, completed or pending)")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrInvalidSeed   = errors.New("invalid seed data")
	ErrConfigExists  = errors.New("config file already exists")
	ErrConfigNil     = errors.New("config is nil")
)
