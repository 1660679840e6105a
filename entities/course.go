package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course belongs to exactly one user; UserID is required and only the owner
// may update or delete the row.
type Course struct {
	ID              string `gorm:"type:text;primaryKey" json:"id"`
	Title           string `gorm:"unique;not null" json:"title"`
	Description     string `gorm:"type:text;not null" json:"description"`
	EstimatedTime   string `json:"estimatedTime,omitempty"`
	MaterialsNeeded string `json:"materialsNeeded,omitempty"`
	UserID          string `gorm:"not null;index" json:"userId"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = c.CreatedAt
	return
}
