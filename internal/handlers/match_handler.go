package handlers

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchService    *services.MatchService
	feedbackService *services.FeedbackService
}

func NewMatchHandler(matchService *services.MatchService, feedbackService *services.FeedbackService) *MatchHandler {
	return &MatchHandler{matchService: matchService, feedbackService: feedbackService}
}

func (h *MatchHandler) Invite(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	match, err := h.matchService.Invite(userID, requestID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

func (h *MatchHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matches, err := h.matchService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *MatchHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid match ID")
	}

	match, err := h.matchService.Get(userID, matchID)
	if err != nil {
		return fail(c, err)
	}

	feedback, given, err := h.feedbackService.ListForMatch(userID, matchID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.MatchDetailResponse{
		Match:         *match,
		Feedback:      feedback,
		FeedbackGiven: given,
	})
}

func (h *MatchHandler) Accept(c *fiber.Ctx) error {
	return h.transition(c, h.matchService.Accept)
}

func (h *MatchHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.matchService.Reject)
}

func (h *MatchHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.matchService.Complete)
}

func (h *MatchHandler) transition(c *fiber.Ctx, action func(uuid.UUID, uuid.UUID) (*models.Match, error)) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid match ID")
	}

	match, err := action(userID, matchID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(match)
}

// Conversation returns the match's conversation, creating it on first
// access.
func (h *MatchHandler) Conversation(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid match ID")
	}

	conversation, err := h.matchService.EnsureConversation(userID, matchID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(conversation)
}

func (h *MatchHandler) SubmitFeedback(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid match ID")
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	feedback, err := h.feedbackService.Create(userID, matchID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}
