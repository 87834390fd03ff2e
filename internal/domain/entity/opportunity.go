package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Opportunity represents a qualified deal created by converting a lead
type Opportunity struct {
	ID         uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	Title      string                `gorm:"size:255;not null" json:"title"`
	LeadID     uuid.UUID             `gorm:"type:uuid;not null;index" json:"lead_id"`
	Value      float64               `gorm:"type:decimal(15,2);default:0" json:"value"`
	Stage      enum.OpportunityStage `gorm:"default:0" json:"stage"`
	AssigneeID uuid.UUID             `gorm:"type:uuid;not null;index" json:"assignee_id"`
	Department string                `gorm:"size:100" json:"department"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
	DeletedAt  gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Lead     Lead `gorm:"foreignKey:LeadID" json:"-"`
	Assignee User `gorm:"foreignKey:AssigneeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new opportunity
func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Opportunity model
func (Opportunity) TableName() string {
	return "opportunities"
}
