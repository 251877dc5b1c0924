package routes

import (
	"time"

	"github.com/campusskills/skillswap/internal/config"
	"github.com/campusskills/skillswap/internal/handlers"
	"github.com/campusskills/skillswap/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth           *handlers.AuthHandler
	Health         *handlers.HealthHandler
	Profile        *handlers.ProfileHandler
	Skill          *handlers.SkillHandler
	Request        *handlers.RequestHandler
	Match          *handlers.MatchHandler
	Message        *handlers.MessageHandler
	Feedback       *handlers.FeedbackHandler
	Notification   *handlers.NotificationHandler
	Recommendation *handlers.RecommendationHandler
	Moderation     *handlers.ModerationHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers, activity fiber.Handler) {
	api := app.Group("/api/v1")

	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Everything below requires a valid token; the activity middleware
	// records last-seen state for the caller.
	protected := api.Group("", middleware.JWTProtected(cfg), activity)

	// Profiles
	protected.Get("/profiles/:username", h.Profile.Get)
	protected.Put("/me/profile", h.Profile.UpdateMe)

	// Skills
	protected.Get("/skills", h.Skill.List)
	protected.Get("/skills/categories", h.Skill.Categories)
	protected.Get("/me/skills", h.Skill.ListMine)
	protected.Post("/me/skills", h.Skill.Add)
	protected.Put("/me/skills/:id", h.Skill.Update)
	protected.Delete("/me/skills/:id", h.Skill.Delete)

	// Requests
	protected.Get("/requests", h.Request.Explore)
	protected.Post("/requests", h.Request.Create)
	protected.Get("/requests/:id", h.Request.Get)
	protected.Put("/requests/:id", h.Request.Update)
	protected.Post("/requests/:id/close", h.Request.Close)
	protected.Get("/me/requests", h.Request.ListMine)

	// Bookmarks
	protected.Post("/requests/:id/bookmark", h.Request.Bookmark)
	protected.Delete("/requests/:id/bookmark", h.Request.Unbookmark)
	protected.Get("/me/bookmarks", h.Request.ListBookmarks)

	// Matches
	protected.Post("/requests/:id/invite", h.Match.Invite)
	protected.Get("/matches", h.Match.List)
	protected.Get("/matches/:id", h.Match.Get)
	protected.Post("/matches/:id/accept", h.Match.Accept)
	protected.Post("/matches/:id/reject", h.Match.Reject)
	protected.Post("/matches/:id/complete", h.Match.Complete)
	protected.Get("/matches/:id/conversation", h.Match.Conversation)
	protected.Post("/matches/:id/feedback", h.Match.SubmitFeedback)

	// Messages
	protected.Get("/conversations/:id/messages", h.Message.List)
	protected.Post("/conversations/:id/messages", h.Message.Send)
	protected.Get("/me/messages/unread", h.Message.UnreadCount)

	// Feedback received by a user
	protected.Get("/profiles/:username/feedback", h.Feedback.ListForUser)

	// Discovery
	protected.Get("/users", h.Recommendation.ExploreUsers)
	protected.Get("/recommendations", h.Recommendation.Recommend)

	// Notifications
	protected.Get("/notifications", h.Notification.List)
	protected.Get("/notifications/unread", h.Notification.UnreadCount)
	protected.Post("/notifications/:id/read", h.Notification.MarkRead)
	protected.Post("/notifications/read-all", h.Notification.MarkAllRead)

	// Blocks & reports
	protected.Post("/blocks", h.Moderation.BlockUser)
	protected.Delete("/blocks/:id", h.Moderation.UnblockUser)
	protected.Get("/blocks", h.Moderation.ListBlocks)
	protected.Post("/reports", h.Moderation.CreateReport)

	// Staff moderation panel
	staff := api.Group("/staff", middleware.JWTProtected(cfg), middleware.StaffRequired(db))
	staff.Get("/reports", h.Moderation.ListReports)
	staff.Put("/reports/:id", h.Moderation.ReviewReport)
}
