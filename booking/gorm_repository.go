package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/smartclinic/clinic-booking/models"
)

// GormRepository is the Postgres-backed Repository.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ActiveSchedule(ctx context.Context, doctorID uint, day time.Weekday) (*models.Schedule, error) {
	var sched models.Schedule
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ? AND is_active = ?", doctorID, int(day), true).
		First(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *GormRepository) Settings(ctx context.Context) (models.ClinicSettings, error) {
	var settings models.ClinicSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ClinicSettings{}, ErrNotFound
	}
	return settings, err
}

func (r *GormRepository) CountSlotAppointments(ctx context.Context, doctorID uint, date time.Time, start, end string) (int64, error) {
	return countSlot(r.db.WithContext(ctx), doctorID, date, start, end)
}

func (r *GormRepository) PatientHasActiveAppointment(ctx context.Context, patientID uint, date time.Time) (bool, error) {
	return patientHasActive(r.db.WithContext(ctx), patientID, date)
}

func (r *GormRepository) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// Create inserts the appointment in one transaction. The newest
// appointment row is locked so two bookings cannot derive the same code,
// and both booking rules are re-checked inside the transaction. The
// partial unique index on active slots catches anything that slips
// through between check and insert.
func (r *GormRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last models.Appointment
		if err := tx.Raw(`
			SELECT *
			FROM appointments
			ORDER BY id DESC
			LIMIT 1
			FOR UPDATE
		`).Scan(&last).Error; err != nil {
			return err
		}
		appt.Code = NextCode(last.Code)

		has, err := patientHasActive(tx, appt.PatientID, appt.Date)
		if err != nil {
			return err
		}
		if has {
			return ErrDuplicateBooking
		}

		count, err := countSlot(tx, appt.DoctorID, appt.Date, appt.StartTime, appt.EndTime)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotUnavailable
		}

		if err := tx.Create(appt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotUnavailable
			}
			return err
		}
		return nil
	})
}

func (r *GormRepository) SetStatus(ctx context.Context, id uint, status models.AppointmentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func activeStatuses() []models.AppointmentStatus {
	return []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}
}

func countSlot(tx *gorm.DB, doctorID uint, date time.Time, start, end string) (int64, error) {
	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND start_time = ? AND end_time = ? AND status IN ?",
			doctorID, date.Format("2006-01-02"), start, end, activeStatuses()).
		Count(&count).Error
	return count, err
}

func patientHasActive(tx *gorm.DB, patientID uint, date time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("patient_id = ? AND date = ? AND status IN ?",
			patientID, date.Format("2006-01-02"), activeStatuses()).
		Count(&count).Error
	return count > 0, err
}
