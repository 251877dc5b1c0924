package services

import (
	"testing"
	"time"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByUsername(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db, testConfig())

	alice := seedUser(t, db, "alice")
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", alice.ID).
		Update("bio", "CS senior, happy to teach.").Error)

	resp, err := profiles.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "CS senior, happy to teach.", resp.Profile.Bio)
	assert.Equal(t, int64(0), resp.RatingSummary.Count)
	assert.Nil(t, resp.RatingSummary.Average)

	_, err = profiles.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRatingSummaryAggregatesFeedback(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db, testConfig())
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	_, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating: 5, Comment: "Fantastic.",
	})
	require.NoError(t, err)
	_, err = feedback.Create(owner.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 3})
	require.NoError(t, err)

	resp, err := profiles.GetByUsername("owner")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.RatingSummary.Count)
	require.NotNil(t, resp.RatingSummary.Average)
	assert.InDelta(t, 5.0, *resp.RatingSummary.Average, 0.001)

	// Only non-empty comments surface as recent feedback.
	require.Len(t, resp.RecentFeedback, 1)
	assert.Equal(t, "Fantastic.", resp.RecentFeedback[0].Comment)

	respInviter, err := profiles.GetByUsername("inviter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), respInviter.RatingSummary.Count)
	assert.Empty(t, respInviter.RecentFeedback)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db, testConfig())

	alice := seedUser(t, db, "alice")

	updated, err := profiles.Update(alice.ID, &dto.UpdateProfileRequest{
		Bio:           "New bio",
		Availability:  "evenings",
		PreferredMode: models.ModeOnline,
		Location:      "North Campus",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, updated.UserID)

	var stored models.Profile
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&stored).Error)
	assert.Equal(t, "New bio", stored.Bio)
	assert.Equal(t, models.ModeOnline, stored.PreferredMode)

	_, err = profiles.Update(alice.ID, &dto.UpdateProfileRequest{PreferredMode: "telepathy"})
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = profiles.Update(uuid.New(), &dto.UpdateProfileRequest{Bio: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTouchActivityThrottles(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db, testConfig())

	alice := seedUser(t, db, "alice")

	require.NoError(t, profiles.TouchActivity(alice.ID, "/requests"))

	var first models.Profile
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&first).Error)
	require.NotNil(t, first.LastActive)
	assert.Equal(t, "/requests", first.LastPath)

	// Within the interval nothing is written.
	require.NoError(t, profiles.TouchActivity(alice.ID, "/matches"))

	var second models.Profile
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&second).Error)
	assert.Equal(t, "/requests", second.LastPath)

	// Once the interval has elapsed the write goes through.
	stale := time.Now().Add(-2 * time.Minute)
	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", alice.ID).
		Update("last_active", stale).Error)

	require.NoError(t, profiles.TouchActivity(alice.ID, "/matches"))

	var third models.Profile
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&third).Error)
	assert.Equal(t, "/matches", third.LastPath)
}
