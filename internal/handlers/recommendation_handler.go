package handlers

import (
	"strconv"

	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit < 0 {
		limit = 0
	}

	recommendations, err := h.recommendationService.RecommendPartners(userID, c.Query("q"), c.Query("mode"), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}

func (h *RecommendationHandler) ExploreUsers(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c, 12)
	users, total, err := h.recommendationService.ExploreUsers(userID, c.Query("skill"), c.Query("type"), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"users":  users,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
