package handlers

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	resp, err := h.profileService.GetByUsername(c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}
