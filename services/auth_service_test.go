package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chukchukgo-backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("priya", "pass123", "priya@example.com", "Priya Sharma", "9811111111")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Nil(t, user.LastLogin)

	logged, err := svc.Login("priya", "pass123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotNil(t, logged.LastLogin)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("priya", "pass123", "priya@example.com", "Priya Sharma", "9811111111")
	require.NoError(t, err)

	_, err = svc.Register("priya", "other", "else@example.com", "Someone Else", "9822222222")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The failed attempt must not have inserted a row.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("priya", "pass123", "priya@example.com", "Priya Sharma", "9811111111")
	require.NoError(t, err)

	_, err = svc.Register("someone", "other", "priya@example.com", "Someone Else", "9822222222")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDuplicateUserErrorPicksViolatedIndex(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("priya", "pass123", "priya@example.com", "Priya Sharma", "9811111111")
	require.NoError(t, err)

	// A registration racing past the username pre-check reaches the insert
	// and fails on the username index, not the email one. Insert directly to
	// obtain the driver's duplicate-key errors and check the mapping.
	sameUsername := models.User{
		Username: "priya", Password: "other", Email: "else@example.com",
		FullName: "Someone Else", Phone: "9822222222",
	}
	err = db.Create(&sameUsername).Error
	require.Error(t, err)
	require.True(t, isDuplicateKey(err))
	assert.ErrorIs(t, duplicateUserError(err), ErrUsernameTaken)

	sameEmail := models.User{
		Username: "someone", Password: "other", Email: "priya@example.com",
		FullName: "Someone Else", Phone: "9822222222",
	}
	err = db.Create(&sameEmail).Error
	require.Error(t, err)
	require.True(t, isDuplicateKey(err))
	assert.ErrorIs(t, duplicateUserError(err), ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("priya", "pass123", "priya@example.com", "Priya Sharma", "9811111111")
	require.NoError(t, err)

	_, err = svc.Login("priya", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "pass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
