package handlers

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) BlockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	block, err := h.moderationService.BlockUser(blockerID, req.BlockedID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

func (h *ModerationHandler) UnblockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.moderationService.UnblockUser(blockerID, blockedID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "User unblocked"})
}

func (h *ModerationHandler) ListBlocks(c *fiber.Ctx) error {
	blockerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	blocks, err := h.moderationService.ListBlocks(blockerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"blocks": blocks})
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	reporterID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.moderationService.CreateReport(reporterID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	limit, offset := pagination(c, 20)
	reports, total, err := h.moderationService.ListReports(c.Query("status"), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ModerationHandler) ReviewReport(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.ReviewReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.moderationService.ReviewReport(reviewerID, reportID, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report updated"})
}
