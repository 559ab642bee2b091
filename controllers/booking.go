package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/booking"
	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/redis"
)

const bookingLockTTL = 5 * time.Second

// BookingService builds the booking service over the shared DB handle,
// with the Redis lock when Redis is configured.
func BookingService() *booking.Service {
	var locker booking.Locker
	if redis.Client != nil {
		locker = redis.NewBookingLocker(redis.Client, bookingLockTTL)
	}
	return booking.NewService(booking.NewGormRepository(db.DB), locker)
}

// BookingErrorStatus maps booking errors to HTTP status codes.
func BookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, booking.ErrDuplicateBooking),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrTooLateToCancel),
		errors.Is(err, booking.ErrNotCancelable):
		return fiber.StatusConflict
	case errors.Is(err, booking.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, booking.ErrNotOwner):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
