package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/zulandar/trestle/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func openAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func TestRegister(t *testing.T) {
	db := openAuthTestDB(t)

	user, err := Register(db, RegisterOpts{
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Error("user.ID = 0, want assigned id")
	}
	if user.Role != "staff" {
		t.Errorf("Role = %q, want default staff", user.Role)
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Error("password stored in plaintext or empty")
	}
	if !CheckPassword("s3cret", user.PasswordHash) {
		t.Error("stored hash does not verify against original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := openAuthTestDB(t)

	if _, err := Register(db, RegisterOpts{Email: "alice@example.com", Password: "x"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := Register(db, RegisterOpts{Email: "alice@example.com", Password: "y"})
	if !errors.Is(err, models.ErrEmailTaken) {
		t.Errorf("second Register error = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	db := openAuthTestDB(t)

	var verr *models.ValidationError
	if _, err := Register(db, RegisterOpts{Password: "x"}); !errors.As(err, &verr) {
		t.Errorf("missing email: error = %v, want ValidationError", err)
	}
	if _, err := Register(db, RegisterOpts{Email: "a@b.c"}); !errors.As(err, &verr) {
		t.Errorf("missing password: error = %v, want ValidationError", err)
	}
}

func TestLogin(t *testing.T) {
	db := openAuthTestDB(t)

	if _, err := Register(db, RegisterOpts{
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice",
		Role:     "admin",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := Login(db, "alice@example.com", "s3cret", testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken is empty")
	}
	if result.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer", result.TokenType)
	}
	if result.Role != "admin" {
		t.Errorf("Role = %q, want admin", result.Role)
	}
	if result.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", result.Email)
	}

	claims, err := ParseToken(result.AccessToken, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("claims.Email = %q, want alice@example.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %q, want admin", claims.Role)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_NoUserExistenceLeak(t *testing.T) {
	db := openAuthTestDB(t)

	if _, err := Register(db, RegisterOpts{Email: "alice@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, unknownErr := Login(db, "nobody@example.com", "s3cret", testSecret, 30*time.Minute)
	_, wrongErr := Login(db, "alice@example.com", "wrong", testSecret, 30*time.Minute)

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}
