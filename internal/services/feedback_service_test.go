package services

import (
	"testing"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// completedMatch drives a match through the full lifecycle so feedback can
// be left on it.
func completedMatch(t *testing.T, db *gorm.DB, ownerID, inviterID uuid.UUID) *models.Match {
	t.Helper()
	matches, _, _ := newMatchStack(db)
	skill := seedSkill(t, db, "Algebra", "other")
	request := seedRequest(t, db, ownerID, skill.ID, "Algebra tutoring")

	match, err := matches.Invite(inviterID, request.ID)
	require.NoError(t, err)
	_, err = matches.Accept(ownerID, match.ID)
	require.NoError(t, err)
	match, err = matches.Complete(inviterID, match.ID)
	require.NoError(t, err)
	return match
}

func TestCreateFeedback(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	entry, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating:  5,
		Comment: "Great teacher.",
	})
	require.NoError(t, err)
	assert.Equal(t, inviter.ID, entry.RaterID)
	assert.Equal(t, owner.ID, entry.RateeID)
	assert.Equal(t, 5, entry.Rating)
}

func TestCreateFeedbackRequiresCompletedMatch(t *testing.T) {
	db := newTestDB(t)
	matches, _, _ := newMatchStack(db)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	skill := seedSkill(t, db, "Calculus", "other")
	request := seedRequest(t, db, owner.ID, skill.ID, "Calculus help")

	match, err := matches.Invite(inviter.ID, request.ID)
	require.NoError(t, err)

	_, err = feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrMatchNotCompleted)

	_, err = matches.Accept(owner.ID, match.ID)
	require.NoError(t, err)
	_, err = feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrMatchNotCompleted)
}

func TestCreateFeedbackValidation(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	outsider := seedUser(t, db, "outsider")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	_, err := feedback.Create(outsider.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	long := make([]byte, 301)
	for i := range long {
		long[i] = 'a'
	}
	_, err = feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating:  3,
		Comment: string(long),
	})
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestDuplicateFeedbackKeepsFirstRow(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	first, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating:  5,
		Comment: "Excellent.",
	})
	require.NoError(t, err)

	// A double-posted form succeeds but changes nothing.
	second, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating:  1,
		Comment: "Changed my mind.",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Rating)

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBothParticipantsMayRate(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	_, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 5})
	require.NoError(t, err)
	_, err = feedback.Create(owner.ID, match.ID, &dto.CreateFeedbackRequest{Rating: 4})
	require.NoError(t, err)

	entries, given, err := feedback.ListForMatch(owner.ID, match.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, given)
}

func TestListForUser(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackService(db)

	owner := seedUser(t, db, "owner")
	inviter := seedUser(t, db, "inviter")
	match := completedMatch(t, db, owner.ID, inviter.ID)

	_, err := feedback.Create(inviter.ID, match.ID, &dto.CreateFeedbackRequest{
		Rating:  4,
		Comment: "Patient and clear.",
	})
	require.NoError(t, err)

	entries, total, err := feedback.ListForUser("owner", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, inviter.ID, entries[0].RaterID)

	_, _, err = feedback.ListForUser("nobody", 10, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
