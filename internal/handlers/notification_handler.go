package handlers

import (
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c, 20)
	notifications, total, err := h.notificationService.List(userID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"notifications": notifications,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(userID, notificationID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": "Notification not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
