package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Divina-s/DigiChamp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	tokenTTL      = 24 * time.Hour
	resetTokenTTL = time.Hour
)

type AuthService struct {
	db           *gorm.DB
	jwtSecret    []byte
	mailer       *Mailer
	resetBaseURL string
	log          *zap.SugaredLogger
}

func NewAuthService(db *gorm.DB, jwtSecret string, mailer *Mailer, resetBaseURL string, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		db:           db,
		jwtSecret:    []byte(jwtSecret),
		mailer:       mailer,
		resetBaseURL: resetBaseURL,
		log:          log,
	}
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *AuthService) Register(username, email, password string) (string, error) {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return "", validationError("username already taken")
	}
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", validationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", internalError("failed to hash password", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.createUser(&user); err != nil {
		return "", err
	}

	return s.GenerateToken(user.ID)
}

// createUser inserts the user row. A unique-index violation is still a
// validation failure: the pre-insert existence checks above race with
// concurrent registrations, and the constraint is the authority.
func (s *AuthService) createUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return validationError("username or email already taken")
		}
		return internalError("failed to create user", err)
	}
	return nil
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, unauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, unauthorizedError("invalid credentials")
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Username: user.Username, Email: user.Email}, nil
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", internalError("failed to sign token", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, unauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, unauthorizedError("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, unauthorizedError("invalid user_id in token")
	}

	var revoked models.RevokedToken
	if err := s.db.Where("token_hash = ?", hashToken(tokenString)).First(&revoked).Error; err == nil {
		return 0, unauthorizedError("token has been revoked")
	}

	return uint(userIDFloat), nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(tokenString string) error {
	if _, err := s.ValidateToken(tokenString); err != nil {
		return err
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err == nil {
		if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	revoked := models.RevokedToken{TokenHash: hashToken(tokenString), ExpiresAt: expiresAt}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&revoked).Error; err != nil {
		return internalError("failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) RequestPasswordReset(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return notFoundError("User with this email does not exist")
	}

	reset := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.db.Create(&reset).Error; err != nil {
		return internalError("failed to create reset token", err)
	}

	link := s.resetBaseURL + "?token=" + reset.Token
	if s.mailer.Configured() {
		if err := s.mailer.SendResetLink(user.Email, link); err != nil {
			return internalError("failed to send reset email", err)
		}
	} else {
		s.log.Infow("SMTP not configured, logging reset link instead", "email", user.Email, "link", link)
	}
	return nil
}

func (s *AuthService) ConfirmPasswordReset(token, newPassword string) error {
	var reset models.PasswordResetToken
	err := s.db.Where("token = ? AND used = ?", token, false).First(&reset).Error
	if err != nil || time.Now().After(reset.ExpiresAt) {
		return validationError("Invalid or expired token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return internalError("failed to hash password", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&models.PasswordResetToken{}).Where("id = ?", reset.ID).
			Update("used", true).Error
	})
	if err != nil {
		return internalError("failed to reset password", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
