package domain

import "errors"

var (
	ErrProgramNotFound    = errors.New("bonus program not found")
	ErrProgramDisabled    = errors.New("bonus program disabled")
	ErrPrizeNotFound      = errors.New("prize not found")
	ErrPrizeUnavailable   = errors.New("prize unavailable")
	ErrInsufficientPoints = errors.New("insufficient bonus points")
	ErrInsufficientStock  = errors.New("insufficient prize stock")
	ErrAlreadyRequested   = errors.New("bonus already requested")
	ErrNotRequested       = errors.New("bonus not requested")
	ErrProgressNotFound   = errors.New("bonus progress not found")
	ErrValidation         = errors.New("validation failed")
)
