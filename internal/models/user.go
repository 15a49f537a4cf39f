package models

// User is an account that can sign in. Role is either "admin" or "staff".
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	FullName     *string `gorm:"size:255" json:"full_name"`
	Role         string  `gorm:"size:16;default:staff" json:"role"`
}
