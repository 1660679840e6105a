package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns zero or more courses. The password is only ever stored as a
// bcrypt hash and never serialized.
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
	EmailAddress string `gorm:"unique;not null" json:"emailAddress"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`

	Courses []Course `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().Format(time.RFC3339)
	u.UpdatedAt = u.CreatedAt
	return
}
