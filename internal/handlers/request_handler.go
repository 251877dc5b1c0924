package handlers

import (
	"strconv"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestService *services.RequestService
	matchService   *services.MatchService
}

func NewRequestHandler(requestService *services.RequestService, matchService *services.MatchService) *RequestHandler {
	return &RequestHandler{requestService: requestService, matchService: matchService}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (h *RequestHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.UpdateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Update(userID, requestID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(request)
}

func (h *RequestHandler) Close(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	request, err := h.requestService.Close(userID, requestID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(request)
}

// Get returns the request plus viewer-specific state: edit rights, whether an
// invite by the viewer is already pending, and whether it is bookmarked.
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	request, err := h.requestService.Get(requestID)
	if err != nil {
		return fail(c, err)
	}

	pending, err := h.matchService.PendingInviteExists(userID, requestID)
	if err != nil {
		return fail(c, err)
	}
	bookmarked, err := h.requestService.IsBookmarked(userID, requestID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.RequestDetailResponse{
		Request:       *request,
		CanEdit:       request.UserID == userID,
		PendingInvite: pending,
		Bookmarked:    bookmarked,
	})
}

func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requests, err := h.requestService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func (h *RequestHandler) Explore(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c, 10)
	requests, total, err := h.requestService.Explore(userID, c.Query("q"), c.Query("category"), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"requests": requests,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *RequestHandler) Bookmark(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	if err := h.requestService.Bookmark(userID, requestID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Request bookmarked"})
}

func (h *RequestHandler) Unbookmark(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	if err := h.requestService.Unbookmark(userID, requestID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bookmark removed"})
}

func (h *RequestHandler) ListBookmarks(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bookmarks, err := h.requestService.ListBookmarks(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"bookmarks": bookmarks})
}

func pagination(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
