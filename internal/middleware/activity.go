package middleware

import (
	"log/slog"

	"github.com/campusskills/skillswap/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Activity records the last-seen timestamp and path of the authenticated
// user after each request. The service throttles writes, so this is cheap on
// busy sessions. An explicit middleware call, not a persistence hook.
func Activity(profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if userID, uidErr := UserID(c); uidErr == nil {
			if touchErr := profiles.TouchActivity(userID, c.Path()); touchErr != nil {
				slog.Warn("failed to record user activity", "error", touchErr)
			}
		}
		return err
	}
}
