package services

import (
	"testing"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	resp, err := auth.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@campus.edu",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", resp.User.ID).First(&profile).Error)
	assert.Equal(t, models.ModeBoth, profile.PreferredMode)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, err := auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@campus.edu", Password: "password123",
	})
	require.NoError(t, err)

	_, err = auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "other@campus.edu", Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Register(&dto.RegisterRequest{
		Username: "alice2", Email: "alice@campus.edu", Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, err := auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@campus.edu", Password: "short",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, err := auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@campus.edu", Password: "password123",
	})
	require.NoError(t, err)

	resp, err := auth.Login(&dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = auth.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	registered, err := auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@campus.edu", Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// A refresh token is single use.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The rotated one still works.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	require.NoError(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	registered, err := auth.Register(&dto.RegisterRequest{
		Username: "alice", Email: "alice@campus.edu", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))

	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
