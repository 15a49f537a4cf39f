// Package auth provides account registration, credential checks, and session
// token issuance.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/zulandar/trestle/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// RegisterOpts holds parameters for creating a new account.
type RegisterOpts struct {
	Email    string
	Password string
	FullName string
	Role     string // admin or staff; defaults to staff
}

// LoginResult is the session issued on a successful login.
type LoginResult struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	Role        string  `json:"role"`
	FullName    *string `json:"full_name"`
	Email       string  `json:"email"`
}

// Register creates a new user with a bcrypt password hash. A duplicate email
// fails with models.ErrEmailTaken.
func Register(db *gorm.DB, opts RegisterOpts) (*models.User, error) {
	if opts.Email == "" {
		return nil, models.NewValidationError("email is required")
	}
	if opts.Password == "" {
		return nil, models.NewValidationError("password is required")
	}
	if opts.Role == "" {
		opts.Role = "staff"
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", opts.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("auth: check email %q: %w", opts.Email, err)
	}
	if count > 0 {
		return nil, models.ErrEmailTaken
	}

	hash, err := HashPassword(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		Email:        opts.Email,
		PasswordHash: hash,
		Role:         opts.Role,
	}
	if opts.FullName != "" {
		user.FullName = &opts.FullName
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("auth: create user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and issues a bearer token expiring ttl from now.
// Unknown email and wrong password fail identically.
func Login(db *gorm.DB, email, password, secret string, ttl time.Duration) (*LoginResult, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: lookup %q: %w", email, err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.Email, user.Role, secret, ttl)
	if err != nil {
		return nil, fmt.Errorf("auth: sign token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        user.Role,
		FullName:    user.FullName,
		Email:       user.Email,
	}, nil
}
