package crm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Phone     *string   `gorm:"size:32;column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
