package booking

import "errors"

var (
	ErrValidation       = errors.New("missing required field")
	ErrDuplicateBooking = errors.New("patient already has an appointment on this day")
	ErrSlotUnavailable  = errors.New("time slot is not available")
	ErrNotFound         = errors.New("not found")
	ErrNotOwner         = errors.New("appointment belongs to another patient")
	ErrNotCancelable    = errors.New("appointment is already completed or canceled")
	ErrTooLateToCancel  = errors.New("appointments can only be canceled at least 2 hours in advance")
	ErrLockNotAcquired  = errors.New("booking lock not acquired")
)
