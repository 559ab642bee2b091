package booking

import (
	"context"
	"testing"
	"time"

	"github.com/smartclinic/clinic-booking/models"
)

func TestAvailableSlotsFullDay(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	slots, err := svc.AvailableSlots(context.Background(), 1, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "09:30" {
		t.Errorf("first slot = %v, want 09:00-09:30", slots[0])
	}
	if slots[15].Start != "16:30" || slots[15].End != "17:00" {
		t.Errorf("last slot = %v, want 16:30-17:00", slots[15])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start != slots[i-1].End {
			t.Errorf("slot %d starts at %s, previous ends at %s", i, slots[i].Start, slots[i-1].End)
		}
	}
}

func TestAvailableSlotsNoScheduleForDay(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	// doctor 2 only works Mondays
	sun := nextMonday().AddDate(0, 0, 6)
	slots, err := svc.AvailableSlots(context.Background(), 2, sun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(slots))
	}
}

func TestAvailableSlotsInactiveScheduleIgnored(t *testing.T) {
	repo := newMockRepo()
	repo.schedules = []models.Schedule{{
		DoctorID:  5,
		DayOfWeek: time.Monday,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  false,
	}}
	repo.settings = &models.ClinicSettings{AppointmentDuration: 30}
	svc := NewService(repo, nil)

	slots, err := svc.AvailableSlots(context.Background(), 5, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(slots))
	}
}

func TestAvailableSlotsDefaultDuration(t *testing.T) {
	repo := newMockRepo()
	repo.schedules = []models.Schedule{weekdaySchedule(1, time.Monday)}
	// no settings row configured
	svc := NewService(repo, nil)

	slots, err := svc.AvailableSlots(context.Background(), 1, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("got %d slots with default 30m duration, want 16", len(slots))
	}
}

func TestAvailableSlotsDropsPartialTrailingSlot(t *testing.T) {
	repo := newMockRepo()
	repo.schedules = []models.Schedule{{
		DoctorID:  1,
		DayOfWeek: time.Monday,
		StartTime: "09:00",
		EndTime:   "10:45",
		IsActive:  true,
	}}
	repo.settings = &models.ClinicSettings{AppointmentDuration: 30}
	svc := NewService(repo, nil)

	slots, err := svc.AvailableSlots(context.Background(), 1, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10:30-11:00 would run past 10:45
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[2].End != "10:30" {
		t.Errorf("last slot ends %s, want 10:30", slots[2].End)
	}
}

func TestNextCode(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"", "SC-001"},
		{"SC-001", "SC-002"},
		{"SC-042", "SC-043"},
		{"SC-999", "SC-1000"},
		{"SC-1000", "SC-1001"},
		{"bogus", "SC-001"},
	}
	for _, tc := range cases {
		if got := NextCode(tc.last); got != tc.want {
			t.Errorf("NextCode(%q) = %q, want %q", tc.last, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("9:00"); err != nil {
		t.Errorf("single digit hour should parse: %v", err)
	}
	if _, err := ParseClock("24:00"); err == nil {
		t.Error("expected error for 24:00")
	}
	m, err := ParseClock("16:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 16*60+30 {
		t.Errorf("ParseClock(16:30) = %d", m)
	}
	if got := formatClock(m); got != "16:30" {
		t.Errorf("formatClock round trip = %q", got)
	}
}
