package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartclinic/clinic-booking/models"
)

// -- Mock repository --

type mockRepo struct {
	schedules []models.Schedule
	settings  *models.ClinicSettings
	appts     map[uint]*models.Appointment
	nextID    uint
	lastCode  string
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[uint]*models.Appointment)}
}

func (m *mockRepo) ActiveSchedule(_ context.Context, doctorID uint, day time.Weekday) (*models.Schedule, error) {
	for i := range m.schedules {
		s := &m.schedules[i]
		if s.DoctorID == doctorID && s.DayOfWeek == day && s.IsActive {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Settings(_ context.Context) (models.ClinicSettings, error) {
	if m.settings == nil {
		return models.ClinicSettings{}, ErrNotFound
	}
	return *m.settings, nil
}

func (m *mockRepo) CountSlotAppointments(_ context.Context, doctorID uint, date time.Time, start, end string) (int64, error) {
	var count int64
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date.Equal(date) &&
			a.StartTime == start && a.EndTime == end && a.Status.IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *mockRepo) PatientHasActiveAppointment(_ context.Context, patientID uint, date time.Time) (bool, error) {
	for _, a := range m.appts {
		if a.PatientID == patientID && a.Date.Equal(date) && a.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) AppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) Create(ctx context.Context, appt *models.Appointment) error {
	// mirror the transactional re-checks of the real repository
	has, _ := m.PatientHasActiveAppointment(ctx, appt.PatientID, appt.Date)
	if has {
		return ErrDuplicateBooking
	}
	count, _ := m.CountSlotAppointments(ctx, appt.DoctorID, appt.Date, appt.StartTime, appt.EndTime)
	if count > 0 {
		return ErrSlotUnavailable
	}
	m.nextID++
	appt.ID = m.nextID
	appt.Code = NextCode(m.lastCode)
	m.lastCode = appt.Code
	appt.CreatedAt = time.Now()
	m.appts[appt.ID] = appt
	return nil
}

func (m *mockRepo) SetStatus(_ context.Context, id uint, status models.AppointmentStatus) error {
	a, ok := m.appts[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}

type busyLocker struct{}

func (busyLocker) WithLock(context.Context, string, func(ctx context.Context) error) error {
	return ErrLockNotAcquired
}

// -- Helpers --

func nextMonday() time.Time {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	return d
}

func weekdaySchedule(doctorID uint, day time.Weekday) models.Schedule {
	return models.Schedule{
		DoctorID:  doctorID,
		DayOfWeek: day,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
}

func newTestService(repo *mockRepo) *Service {
	repo.schedules = append(repo.schedules,
		weekdaySchedule(1, time.Monday),
		weekdaySchedule(2, time.Monday),
		weekdaySchedule(1, time.Tuesday),
	)
	repo.settings = &models.ClinicSettings{AppointmentDuration: 30}
	return NewService(repo, nil)
}

func clientRequest(patientID, doctorID uint, date time.Time, start, end string) Request {
	return Request{
		ActorRole: models.RoleClient,
		PatientID: patientID,
		DoctorID:  doctorID,
		ServiceID: 1,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

// -- Booking --

func TestBookAssignsSequentialCodes(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	reqs := []Request{
		clientRequest(1, 1, mon, "09:00", "09:30"),
		clientRequest(2, 1, mon, "09:30", "10:00"),
		clientRequest(3, 2, mon, "09:00", "09:30"),
	}
	want := []string{"SC-001", "SC-002", "SC-003"}
	for i, req := range reqs {
		appt, err := svc.Book(ctx, req)
		if err != nil {
			t.Fatalf("booking %d: unexpected error: %v", i, err)
		}
		if appt.Code != want[i] {
			t.Errorf("booking %d: code = %q, want %q", i, appt.Code, want[i])
		}
	}
}

func TestBookRejectsSecondAppointmentSameDay(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	if _, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// different doctor and time, same patient and day
	_, err := svc.Book(ctx, clientRequest(1, 2, mon, "14:00", "14:30"))
	if !errors.Is(err, ErrDuplicateBooking) {
		t.Fatalf("err = %v, want ErrDuplicateBooking", err)
	}
}

func TestBookRejectsTakenSlot(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	if _, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Book(ctx, clientRequest(2, 1, mon, "10:00", "10:30"))
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want ErrSlotUnavailable", err)
	}
}

func TestBookClientStartsPending(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	appt, err := svc.Book(context.Background(), clientRequest(1, 1, nextMonday(), "10:00", "10:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}
}

func TestBookStaffConfirmedWithDefaultService(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	appt, err := svc.Book(context.Background(), Request{
		ActorRole: models.RoleStaff,
		PatientID: 1,
		DoctorID:  1,
		Date:      nextMonday(),
		StartTime: "10:00",
		EndTime:   "10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", appt.Status)
	}
	if appt.ServiceID != models.DefaultServiceID {
		t.Errorf("service = %d, want default %d", appt.ServiceID, models.DefaultServiceID)
	}
}

func TestBookValidation(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	cases := []struct {
		name string
		req  Request
	}{
		{"missing doctor", clientRequest(1, 0, mon, "10:00", "10:30")},
		{"missing patient", clientRequest(0, 1, mon, "10:00", "10:30")},
		{"client without service", Request{
			ActorRole: models.RoleClient, PatientID: 1, DoctorID: 1,
			Date: mon, StartTime: "10:00", EndTime: "10:30",
		}},
		{"bad start time", clientRequest(1, 1, mon, "25:00", "10:30")},
		{"missing date", clientRequest(1, 1, time.Time{}, "10:00", "10:30")},
	}
	for _, tc := range cases {
		if _, err := svc.Book(ctx, tc.req); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", tc.name, err)
		}
	}
	if len(repo.appts) != 0 {
		t.Errorf("rejected requests persisted %d appointments", len(repo.appts))
	}
}

func TestBookLockBusyReadsAsSlotUnavailable(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	svc.locker = busyLocker{}

	_, err := svc.Book(context.Background(), clientRequest(1, 1, nextMonday(), "10:00", "10:30"))
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want ErrSlotUnavailable", err)
	}
}

// -- Per-day limit --

func TestCanPatientBookReleasedByCancellation(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	appt, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	ok, err := svc.CanPatientBook(ctx, 1, mon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected per-day limit to block a second booking")
	}

	if err := svc.UpdateStatus(ctx, appt.ID, models.StatusCanceled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	ok, err = svc.CanPatientBook(ctx, 1, mon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected canceled appointment to release the per-day limit")
	}
}

// -- Cancellation --

func TestCancel(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	// fixed clock: Monday 07:00 UTC
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	}

	appt, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := svc.Cancel(ctx, 1, appt.ID); err != nil {
		t.Fatalf("cancel 3h ahead: %v", err)
	}
	if appt.Status != models.StatusCanceled {
		t.Errorf("status = %q, want canceled", appt.Status)
	}
}

func TestCancelTooLate(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	appt, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	// 08:01 is 1h59m before the 10:00 start
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 1, 0, 0, time.UTC)
	}
	if err := svc.Cancel(ctx, 1, appt.ID); !errors.Is(err, ErrTooLateToCancel) {
		t.Fatalf("err = %v, want ErrTooLateToCancel", err)
	}

	// 07:59 is 2h1m before the start, just outside the cutoff
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 7, 59, 0, 0, time.UTC)
	}
	if err := svc.Cancel(ctx, 1, appt.ID); err != nil {
		t.Fatalf("cancel 2h1m ahead: %v", err)
	}
}

func TestCancelOwnershipAndState(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	}

	appt, err := svc.Book(ctx, clientRequest(1, 1, nextMonday(), "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := svc.Cancel(ctx, 2, appt.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("foreign patient: err = %v, want ErrNotOwner", err)
	}
	if err := svc.Cancel(ctx, 1, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}

	if err := svc.UpdateStatus(ctx, appt.ID, models.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.Cancel(ctx, 1, appt.ID); !errors.Is(err, ErrNotCancelable) {
		t.Errorf("completed: err = %v, want ErrNotCancelable", err)
	}
}

// -- Status updates --

func TestUpdateStatusIsPermissive(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	appt, err := svc.Book(ctx, clientRequest(1, 1, nextMonday(), "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	// any status may follow any other
	for _, status := range []models.AppointmentStatus{
		models.StatusCompleted,
		models.StatusPending,
		models.StatusCanceled,
		models.StatusConfirmed,
	} {
		if err := svc.UpdateStatus(ctx, appt.ID, status); err != nil {
			t.Fatalf("update to %q: %v", status, err)
		}
		if appt.Status != status {
			t.Errorf("status = %q, want %q", appt.Status, status)
		}
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, 1, "rescheduled"); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid status: err = %v, want ErrValidation", err)
	}
	if err := svc.UpdateStatus(ctx, 999, models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

// -- End to end --

func TestClientBookingScenario(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	mon := nextMonday()

	appt, err := svc.Book(ctx, clientRequest(1, 1, mon, "10:00", "10:30"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if appt.Code != "SC-001" {
		t.Errorf("code = %q, want SC-001", appt.Code)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}

	// same client, same day, different doctor and time
	_, err = svc.Book(ctx, clientRequest(1, 2, mon, "11:00", "11:30"))
	if !errors.Is(err, ErrDuplicateBooking) {
		t.Fatalf("err = %v, want ErrDuplicateBooking", err)
	}

	// a different day is fine
	if _, err := svc.Book(ctx, clientRequest(1, 1, mon.AddDate(0, 0, 1), "10:00", "10:30")); err != nil {
		t.Fatalf("next day booking: %v", err)
	}
}
