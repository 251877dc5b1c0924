package handlers

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid conversation ID")
	}

	messages, err := h.messageService.List(userID, conversationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid conversation ID")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	message, err := h.messageService.Send(userID, conversationID, req.Body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *MessageHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	count, err := h.messageService.UnreadCount(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}
