package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetAdminDashboard returns clinic-wide counters for the admin home page.
func GetAdminDashboard(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var totalAppointments int64
	db.DB.Model(&models.Appointment{}).Count(&totalAppointments)

	var todayAppointments int64
	db.DB.Model(&models.Appointment{}).
		Where("date = ?", today).
		Count(&todayAppointments)

	var pendingAppointments int64
	db.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingAppointments)

	var totalDoctors int64
	db.DB.Model(&models.Doctor{}).Where("is_active = ?", true).Count(&totalDoctors)

	var totalServices int64
	db.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&totalServices)

	var totalClients int64
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleClient).
		Count(&totalClients)

	var pendingApprovals int64
	db.DB.Model(&models.User{}).
		Where("is_approved = ?", false).
		Count(&pendingApprovals)

	return c.JSON(fiber.Map{
		"total_appointments":   totalAppointments,
		"today_appointments":   todayAppointments,
		"pending_appointments": pendingAppointments,
		"total_doctors":        totalDoctors,
		"total_services":       totalServices,
		"total_clients":        totalClients,
		"pending_approvals":    pendingApprovals,
	})
}

// GetAllUsers lists every account with its role, newest first.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Preload("Role").Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	return c.JSON(users)
}

// GetPendingUsers lists accounts waiting for approval.
func GetPendingUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Preload("Role").
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	return c.JSON(users)
}

// ApproveUser marks an account approved and active so it can log in.
func ApproveUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	user.IsApproved = true
	user.IsActive = true
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to approve user",
			Error:   err.Error(),
		})
	}
	go utils.SendEmail(user.Email, "Account Approved",
		"Hello "+user.FullName()+", your account has been approved. You can now log in and book appointments.")
	return c.JSON(fiber.Map{"message": "User approved"})
}

// RejectUser removes an account that was never approved.
func RejectUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	if user.IsApproved {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot reject an approved user",
		})
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reject user",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "User rejected"})
}

// ToggleUserStatus flips an account between active and deactivated.
func ToggleUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid user ID",
		})
	}
	actorID := c.Locals("userID").(uint)
	if uint(id) == actorID {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot deactivate your own account",
		})
	}
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	user.IsActive = !user.IsActive
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}
	return c.JSON(user)
}

// DeleteUser soft-deletes an account. Admins cannot delete themselves.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid user ID",
		})
	}
	actorID := c.Locals("userID").(uint)
	if uint(id) == actorID {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot delete your own account",
		})
	}
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
