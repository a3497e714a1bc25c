package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. The public UUID is generated
// application-side in BeforeCreate so the schema stays portable across
// backing databases.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UUID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the public identifier when the caller did not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.UUID == uuid.Nil {
		m.UUID = uuid.New()
	}

	return nil
}
