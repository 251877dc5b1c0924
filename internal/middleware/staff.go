package middleware

import (
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffRequired gates moderation endpoints on the user's Role field. It runs
// after JWTProtected, so a missing token has already been rejected.
func StaffRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil || !user.IsStaff() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Staff access required",
			})
		}
		return c.Next()
	}
}
