package handlers

import (
	"errors"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps service sentinel errors onto the three outcome classes the API
// exposes: forbidden, conflict and not-found. Anything unmapped is a server
// error with a generic message.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotParticipant),
		errors.Is(err, services.ErrOnlyPartner),
		errors.Is(err, services.ErrOwnRequest),
		errors.Is(err, services.ErrNotRequestOwner),
		errors.Is(err, services.ErrBlockedRelation),
		errors.Is(err, services.ErrActionNotAvailable),
		errors.Is(err, services.ErrMatchNotCompleted):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})

	case errors.Is(err, services.ErrInvitePending),
		errors.Is(err, services.ErrDuplicateSkill),
		errors.Is(err, services.ErrAlreadyBlocked),
		errors.Is(err, services.ErrSelfBlock),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})

	case errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrSkillNotFound),
		errors.Is(err, services.ErrUserSkillNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrConversationNotFound),
		errors.Is(err, services.ErrBlockNotFound),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrTargetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})

	case errors.Is(err, services.ErrInvalidMode),
		errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrInvalidSkillInput),
		errors.Is(err, services.ErrInvalidSelfRating),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrCommentTooLong),
		errors.Is(err, services.ErrInvalidReason),
		errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrMessageTooLong):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
