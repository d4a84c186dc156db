package controllers

import (
	"errors"
	"time"

	"grc-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ComplaintController is plain record storage for customer complaints.
// Technician assignment, spare indents and payment collection are just
// columns on the record, there is no workflow behind them.
type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(DB *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: DB}
}

func (c *ComplaintController) CreateComplaint(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var complaint models.Complaint
	if err := ctx.BodyParser(&complaint); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(complaint); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	complaint.CreatedBy = username

	if err := c.DB.Create(&complaint).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Complaint created successfully",
		"data":    complaint,
	})
}

func (c *ComplaintController) UpdateComplaint(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)
	number := ctx.Params("complaint_number")

	var complaint models.Complaint
	if err := c.DB.First(&complaint, "complaint_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Complaint not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input models.Complaint
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	input.ComplaintNumber = complaint.ComplaintNumber
	input.CreatedBy = complaint.CreatedBy
	input.UpdatedBy = &username
	updatedTime := time.Now().Format("15:04:05")
	input.UpdatedTime = &updatedTime

	if err := c.DB.Save(&input).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Complaint updated successfully",
		"data":    input,
	})
}

func (c *ComplaintController) GetAllComplaints(ctx *fiber.Ctx) error {
	var complaints []models.Complaint
	if err := c.DB.Order("complaint_date desc").Find(&complaints).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    complaints,
	})
}

func (c *ComplaintController) GetComplaintByNumber(ctx *fiber.Ctx) error {
	number := ctx.Params("complaint_number")

	var complaint models.Complaint
	if err := c.DB.First(&complaint, "complaint_number = ?", number).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Complaint not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    complaint,
	})
}

// GetPendingComplaints lists complaints still waiting on a spare.
func (c *ComplaintController) GetPendingComplaints(ctx *fiber.Ctx) error {
	var complaints []models.Complaint
	err := c.DB.Where("spare_pending = ? AND final_status = ?", "Y", "N").
		Order("complaint_date").
		Find(&complaints).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    complaints,
	})
}
