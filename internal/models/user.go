package models

import "gorm.io/gorm"

// User represents an account in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Bio          string `gorm:"size:500"`

	// Path or URL into the blob store; upload mechanics live outside this service.
	ProfilePicture string `gorm:"size:512"`
}
