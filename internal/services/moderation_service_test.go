package services

import (
	"testing"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockUser(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	block, err := moderation.BlockUser(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, block.BlockerID)
	assert.Equal(t, bob.ID, block.BlockedID)

	_, err = moderation.BlockUser(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyBlocked)

	_, err = moderation.BlockUser(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfBlock)

	_, err = moderation.BlockUser(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsBlockedIsSymmetric(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := moderation.BlockUser(alice.ID, bob.ID)
	require.NoError(t, err)

	blocked, err := moderation.IsBlocked(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = moderation.IsBlocked(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = moderation.IsBlocked(alice.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlockedUserIDsUnionsBothDirections(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := moderation.BlockUser(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = moderation.BlockUser(carol.ID, alice.ID)
	require.NoError(t, err)

	ids, err := moderation.BlockedUserIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{bob.ID, carol.ID}, ids)
}

func TestUnblockUser(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := moderation.BlockUser(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, moderation.UnblockUser(alice.ID, bob.ID))

	blocked, err := moderation.IsBlocked(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, blocked)

	assert.ErrorIs(t, moderation.UnblockUser(alice.ID, bob.ID), ErrBlockNotFound)
}

func TestCreateReportResolvesTargetOwner(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	reporter := seedUser(t, db, "reporter")
	offender := seedUser(t, db, "offender")
	skill := seedSkill(t, db, "Python", "programming")
	request := seedRequest(t, db, offender.ID, skill.ID, "Suspicious post")

	report, err := moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetRequest,
		TargetID:   request.ID,
		Reason:     "spam",
		Details:    "  advertising a paid course  ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportOpen, report.Status)
	assert.Equal(t, "advertising a paid course", report.Details)
	require.NotNil(t, report.ReportedUserID)
	assert.Equal(t, offender.ID, *report.ReportedUserID)
}

func TestCreateReportProfileAndMessageTargets(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	reporter := seedUser(t, db, "reporter")
	offender := seedUser(t, db, "offender")

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", offender.ID).First(&profile).Error)

	report, err := moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetProfile,
		TargetID:   profile.ID,
		Reason:     "inappropriate",
	})
	require.NoError(t, err)
	require.NotNil(t, report.ReportedUserID)
	assert.Equal(t, offender.ID, *report.ReportedUserID)

	conversation := models.Conversation{ID: uuid.New(), MatchID: uuid.New()}
	require.NoError(t, db.Create(&conversation).Error)
	message := models.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       offender.ID,
		Body:           "rude",
	}
	require.NoError(t, db.Create(&message).Error)

	report, err = moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetMessage,
		TargetID:   message.ID,
		Reason:     "harassment",
	})
	require.NoError(t, err)
	require.NotNil(t, report.ReportedUserID)
	assert.Equal(t, offender.ID, *report.ReportedUserID)
}

func TestCreateReportValidation(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	reporter := seedUser(t, db, "reporter")

	_, err := moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetRequest,
		TargetID:   uuid.New(),
		Reason:     "because",
	})
	assert.ErrorIs(t, err, ErrInvalidReason)

	_, err = moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: "comment",
		TargetID:   uuid.New(),
		Reason:     "spam",
	})
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetRequest,
		TargetID:   uuid.New(),
		Reason:     "spam",
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestReviewReport(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	reporter := seedUser(t, db, "reporter")
	offender := seedUser(t, db, "offender")
	staff := seedUser(t, db, "staff")
	skill := seedSkill(t, db, "Python", "programming")
	request := seedRequest(t, db, offender.ID, skill.ID, "Spammy post")

	report, err := moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
		TargetKind: models.TargetRequest,
		TargetID:   request.ID,
		Reason:     "spam",
	})
	require.NoError(t, err)

	err = moderation.ReviewReport(staff.ID, report.ID, &dto.ReviewReportRequest{Status: "escalated"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = moderation.ReviewReport(staff.ID, report.ID, &dto.ReviewReportRequest{
		Status:         models.ReportResolved,
		ResolutionNote: "Request removed.",
	})
	require.NoError(t, err)

	var updated models.Report
	require.NoError(t, db.First(&updated, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportResolved, updated.Status)
	require.NotNil(t, updated.ReviewedByID)
	assert.Equal(t, staff.ID, *updated.ReviewedByID)
	assert.NotNil(t, updated.ReviewedAt)
	assert.Equal(t, "Request removed.", updated.ResolutionNote)

	err = moderation.ReviewReport(staff.ID, uuid.New(), &dto.ReviewReportRequest{Status: models.ReportDismissed})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReportsByStatus(t *testing.T) {
	db := newTestDB(t)
	moderation := NewModerationService(db)

	reporter := seedUser(t, db, "reporter")
	offender := seedUser(t, db, "offender")
	staff := seedUser(t, db, "staff")
	skill := seedSkill(t, db, "Python", "programming")

	for i, title := range []string{"first", "second", "third"} {
		request := seedRequest(t, db, offender.ID, skill.ID, title)
		report, err := moderation.CreateReport(reporter.ID, &dto.CreateReportRequest{
			TargetKind: models.TargetRequest,
			TargetID:   request.ID,
			Reason:     "spam",
		})
		require.NoError(t, err)
		if i == 0 {
			require.NoError(t, moderation.ReviewReport(staff.ID, report.ID, &dto.ReviewReportRequest{
				Status: models.ReportDismissed,
			}))
		}
	}

	reports, total, err := moderation.ListReports("", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, reports, 3)

	reports, total, err = moderation.ListReports(models.ReportOpen, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, reports, 2)
}
