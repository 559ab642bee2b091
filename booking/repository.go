package booking

import (
	"context"
	"time"

	"github.com/smartclinic/clinic-booking/models"
)

// Repository contains all DB interactions needed by the booking service.
type Repository interface {
	// ActiveSchedule returns the active schedule for a doctor on the
	// given weekday, or ErrNotFound when the doctor has none.
	ActiveSchedule(ctx context.Context, doctorID uint, day time.Weekday) (*models.Schedule, error)

	// Settings returns the clinic settings row, or ErrNotFound when the
	// clinic has not been configured yet.
	Settings(ctx context.Context) (models.ClinicSettings, error)

	// CountSlotAppointments counts pending or confirmed appointments for
	// the doctor on the date with exactly this start and end time.
	CountSlotAppointments(ctx context.Context, doctorID uint, date time.Time, start, end string) (int64, error)

	// PatientHasActiveAppointment reports whether the patient already has
	// a pending or confirmed appointment on the date.
	PatientHasActiveAppointment(ctx context.Context, patientID uint, date time.Time) (bool, error)

	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	// Create persists the appointment, assigning its booking code. The
	// duplicate-day and slot checks are re-run atomically with the
	// insert; conflicts surface as ErrDuplicateBooking or
	// ErrSlotUnavailable and leave no partial state.
	Create(ctx context.Context, appt *models.Appointment) error

	SetStatus(ctx context.Context, id uint, status models.AppointmentStatus) error
}

// Locker serializes booking attempts for one doctor and day.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type noopLocker struct{}

func (noopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
