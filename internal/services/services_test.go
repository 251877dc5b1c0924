package services

import (
	"testing"
	"time"

	"github.com/campusskills/skillswap/internal/config"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database and migrates every table the
// services touch. Connections are pinned to one so every query sees the same
// memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Request{},
		&models.Bookmark{},
		&models.Match{},
		&models.Conversation{},
		&models.Message{},
		&models.Feedback{},
		&models.Block{},
		&models.Notification{},
		&models.Report{},
		&models.RefreshToken{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
		ActivityInterval: time.Minute,
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@campus.edu",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	profile := &models.Profile{UserID: user.ID, PreferredMode: models.ModeBoth}
	require.NoError(t, db.Create(profile).Error)
	return user
}

func seedSkill(t *testing.T, db *gorm.DB, name, category string) *models.Skill {
	t.Helper()
	skill := &models.Skill{ID: uuid.New(), Name: name, Category: category}
	require.NoError(t, db.Create(skill).Error)
	return skill
}

func seedUserSkill(t *testing.T, db *gorm.DB, userID, skillID uuid.UUID, skillType string) *models.UserSkill {
	t.Helper()
	us := &models.UserSkill{
		ID:      uuid.New(),
		UserID:  userID,
		SkillID: skillID,
		Type:    skillType,
		Level:   models.LevelIntermediate,
	}
	require.NoError(t, db.Create(us).Error)
	return us
}

func seedRequest(t *testing.T, db *gorm.DB, userID, skillID uuid.UUID, title string) *models.Request {
	t.Helper()
	request := &models.Request{
		ID:          uuid.New(),
		UserID:      userID,
		SkillID:     skillID,
		Title:       title,
		Description: "Looking for a study partner.",
		Status:      models.RequestOpen,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

// newMatchStack wires the match service with its collaborators the same way
// main does.
func newMatchStack(db *gorm.DB) (*MatchService, *ModerationService, *NotificationService) {
	moderation := NewModerationService(db)
	notifications := NewNotificationService(db)
	return NewMatchService(db, moderation, notifications), moderation, notifications
}

func setMode(t *testing.T, db *gorm.DB, userID uuid.UUID, mode string) {
	t.Helper()
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("preferred_mode", mode).Error)
}
