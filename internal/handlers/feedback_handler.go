package handlers

import (
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListForUser returns the feedback a user has received.
func (h *FeedbackHandler) ListForUser(c *fiber.Ctx) error {
	limit, offset := pagination(c, 20)
	entries, total, err := h.feedbackService.ListForUser(c.Params("username"), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"feedback": entries,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}
