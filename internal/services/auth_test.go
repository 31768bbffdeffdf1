package services

import (
	"testing"

	"github.com/Divina-s/DigiChamp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := openTestDB(t)
	mailer := NewMailer("", "", "", "", "")
	return NewAuthService(db, "test-secret", mailer, "http://localhost/reset-password", zap.NewNop().Sugar())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestAuthService(t)

	token, err := s.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.NotZero(t, userID)

	result, err := s.Login("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.NotEmpty(t, result.Token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Register("bob", "bob@example.com", "password123")
	require.NoError(t, err)

	_, err = s.Register("bob", "other@example.com", "password123")
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestCreateUserDuplicateMapsToValidation(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Register("frank", "frank@example.com", "password123")
	require.NoError(t, err)

	// The existence checks in Register can pass concurrently with another
	// registration; the unique index then rejects the insert, and that must
	// still read as a validation failure, not an internal one.
	err = s.createUser(&models.User{
		Username:     "frank",
		Email:        "frank2@example.com",
		PasswordHash: "x",
	})
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Register("carol", "carol@example.com", "password123")
	require.NoError(t, err)

	_, err = s.Login("carol", "wrong")
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindUnauthorized, svcErr.Kind)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestAuthService(t)

	token, err := s.Register("dave", "dave@example.com", "password123")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, s.Logout(token))

	_, err = s.ValidateToken(token)
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindUnauthorized, svcErr.Kind)
}

func TestPasswordResetFlow(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Register("erin", "erin@example.com", "oldpassword")
	require.NoError(t, err)

	require.NoError(t, s.RequestPasswordReset("erin@example.com"))

	var reset models.PasswordResetToken
	require.NoError(t, s.db.First(&reset).Error)

	require.NoError(t, s.ConfirmPasswordReset(reset.Token, "newpassword"))

	_, err = s.Login("erin", "oldpassword")
	require.Error(t, err)
	result, err := s.Login("erin", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, "erin", result.Username)

	// A reset token is single use.
	err = s.ConfirmPasswordReset(reset.Token, "anotherpassword")
	require.Error(t, err)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	s := newTestAuthService(t)

	err := s.RequestPasswordReset("nobody@example.com")
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}
