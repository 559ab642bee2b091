package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders finds confirmed appointments starting in
// roughly one hour and emails the patient.
func sendAppointmentReminders() {
	now := time.Now()
	today := now.Format("2006-01-02")
	startWindow := now.Add(55 * time.Minute).Format("15:04")
	endWindow := now.Add(65 * time.Minute).Format("15:04")

	var appointments []models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		Where("status = ? AND date = ? AND start_time BETWEEN ? AND ?",
			models.StatusConfirmed, today, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Patient.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.Code, err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.Code, appointment.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment %s", appointment.Code)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Booking Code:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so at least 2 hours before the start.</p>
		<p>Best regards,</p>
		<p>Smart Clinic</p>
	`, appointment.Patient.FullName(), appointment.Code, appointment.Service.Name,
		appointment.Doctor.Name, appointment.Date.Format("2006-01-02"),
		appointment.StartTime, appointment.EndTime)

	return utils.SendEmail(appointment.Patient.Email, subject, body)
}
