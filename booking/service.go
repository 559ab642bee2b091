package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smartclinic/clinic-booking/models"
)

const codePrefix = "SC-"

// TimeRange is one bookable slot, both ends in "HH:MM".
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Request carries everything needed to book an appointment. Staff and
// admin bookings are confirmed immediately and may omit the service;
// client bookings start out pending.
type Request struct {
	ActorRole string
	PatientID uint
	DoctorID  uint
	ServiceID uint
	Date      time.Time
	StartTime string
	EndTime   string
	Notes     string
}

type Service struct {
	repo   Repository
	locker Locker
	now    func() time.Time
}

func NewService(repo Repository, locker Locker) *Service {
	if locker == nil {
		locker = noopLocker{}
	}
	return &Service{
		repo:   repo,
		locker: locker,
		now:    time.Now,
	}
}

// AvailableSlots derives the bookable slots for a doctor on a date from
// the doctor's weekly schedule and the clinic-wide slot duration. A
// doctor without an active schedule that weekday has no slots. Booked
// slots are not subtracted here; the conflict check happens at booking
// time.
func (s *Service) AvailableSlots(ctx context.Context, doctorID uint, date time.Time) ([]TimeRange, error) {
	sched, err := s.repo.ActiveSchedule(ctx, doctorID, date.Weekday())
	if errors.Is(err, ErrNotFound) {
		return []TimeRange{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	settings, err := s.repo.Settings(ctx)
	if errors.Is(err, ErrNotFound) {
		settings = models.DefaultClinicSettings()
	} else if err != nil {
		return nil, fmt.Errorf("load clinic settings: %w", err)
	}
	duration := settings.AppointmentDuration
	if duration <= 0 {
		duration = models.DefaultClinicSettings().AppointmentDuration
	}

	cur, err := ParseClock(sched.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(sched.EndTime)
	if err != nil {
		return nil, err
	}

	slots := []TimeRange{}
	for cur < end {
		slotEnd := cur + duration
		if slotEnd <= end {
			slots = append(slots, TimeRange{Start: formatClock(cur), End: formatClock(slotEnd)})
		}
		cur = slotEnd
	}
	return slots, nil
}

// BookedSlotCount counts active appointments holding exactly this time
// range. Conflicts are detected by exact start/end equality, matching
// the slots handed out by AvailableSlots.
func (s *Service) BookedSlotCount(ctx context.Context, doctorID uint, date time.Time, start, end string) (int64, error) {
	return s.repo.CountSlotAppointments(ctx, doctorID, dateOnly(date), start, end)
}

// CanPatientBook reports whether the patient is still under the
// one-active-appointment-per-day limit. Canceled and completed
// appointments do not count.
func (s *Service) CanPatientBook(ctx context.Context, patientID uint, date time.Time) (bool, error) {
	has, err := s.repo.PatientHasActiveAppointment(ctx, patientID, dateOnly(date))
	if err != nil {
		return false, err
	}
	return !has, nil
}

// Book validates the request, enforces the per-day and slot rules and
// persists the appointment. On success the returned appointment carries
// its assigned booking code; on any failure nothing is persisted.
func (s *Service) Book(ctx context.Context, req Request) (*models.Appointment, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	date := dateOnly(req.Date)

	ok, err := s.CanPatientBook(ctx, req.PatientID, date)
	if err != nil {
		return nil, fmt.Errorf("check patient limit: %w", err)
	}
	if !ok {
		return nil, ErrDuplicateBooking
	}

	taken, err := s.BookedSlotCount(ctx, req.DoctorID, date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken > 0 {
		return nil, ErrSlotUnavailable
	}

	status := models.StatusPending
	if staffActor(req.ActorRole) {
		status = models.StatusConfirmed
	}

	appt := &models.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		Notes:     req.Notes,
	}

	key := fmt.Sprintf("doctor:%d:%s", req.DoctorID, date.Format("2006-01-02"))
	err = s.locker.WithLock(ctx, key, func(lockCtx context.Context) error {
		return s.repo.Create(lockCtx, appt)
	})
	if err != nil {
		if errors.Is(err, ErrLockNotAcquired) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return appt, nil
}

// Cancel lets the owning patient cancel an appointment that has not
// finished and starts more than 2 hours from now.
func (s *Service) Cancel(ctx context.Context, patientID, appointmentID uint) error {
	appt, err := s.repo.AppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return ErrNotOwner
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCanceled {
		return ErrNotCancelable
	}
	if !appt.StartsAt().After(s.now().Add(2 * time.Hour)) {
		return ErrTooLateToCancel
	}
	return s.repo.SetStatus(ctx, appointmentID, models.StatusCanceled)
}

// UpdateStatus overwrites the appointment status. Any of the four
// statuses may follow any other; staff decide what a record means.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID uint, status models.AppointmentStatus) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: status %q", ErrValidation, status)
	}
	return s.repo.SetStatus(ctx, appointmentID, status)
}

func (s *Service) validate(req *Request) error {
	if req.PatientID == 0 {
		return fmt.Errorf("%w: patient", ErrValidation)
	}
	if req.DoctorID == 0 {
		return fmt.Errorf("%w: doctor", ErrValidation)
	}
	if req.ServiceID == 0 {
		if !staffActor(req.ActorRole) {
			return fmt.Errorf("%w: service", ErrValidation)
		}
		req.ServiceID = models.DefaultServiceID
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrValidation)
	}
	if _, err := ParseClock(req.StartTime); err != nil {
		return fmt.Errorf("%w: start time", ErrValidation)
	}
	if _, err := ParseClock(req.EndTime); err != nil {
		return fmt.Errorf("%w: end time", ErrValidation)
	}
	return nil
}

func staffActor(role string) bool {
	return role == models.RoleStaff || role == models.RoleAdmin
}

// NextCode returns the booking code following last, starting at SC-001.
// Codes grow past three digits once SC-999 is issued.
func NextCode(last string) string {
	n := 1
	if strings.HasPrefix(last, codePrefix) {
		if v, err := strconv.Atoi(strings.TrimPrefix(last, codePrefix)); err == nil {
			n = v + 1
		}
	}
	return fmt.Sprintf("%s%03d", codePrefix, n)
}
