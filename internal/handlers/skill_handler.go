package handlers

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.skillService.ListSkills(c.Query("category"), c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

func (h *SkillHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.skillService.Categories()})
}

func (h *SkillHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	offers, wants, err := h.skillService.ListUserSkills(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"offers": offers, "wants": wants})
}

func (h *SkillHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateUserSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	userSkill, err := h.skillService.AddUserSkill(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userSkill)
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	userSkillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid skill ID")
	}

	var req dto.UpdateUserSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	userSkill, err := h.skillService.UpdateUserSkill(userID, userSkillID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(userSkill)
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	userSkillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid skill ID")
	}

	if err := h.skillService.DeleteUserSkill(userID, userSkillID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill removed"})
}
