package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"chukchukgo-backend/models"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a user account. Passwords are stored exactly as supplied;
// the wire contract predates this backend and keeps the plain comparison.
func (s *AuthService) Register(username, password, email, fullName, phone string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := models.User{
		Username: username,
		Password: password,
		Email:    email,
		FullName: fullName,
		Phone:    phone,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, duplicateUserError(err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// duplicateUserError maps a unique-constraint violation on users to the
// offending field. A registration racing past the username pre-check still
// lands here, so the violated index decides, not the order of the checks.
// MySQL names the key (idx_users_username / idx_users_email); SQLite names
// the column (users.username / users.email).
func duplicateUserError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// Login checks the supplied credentials with an exact string compare and
// touches last_login on success.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	return &user, nil
}
