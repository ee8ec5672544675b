package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nutrient is one declared nutrient amount within a supplement's serving
// (or per 100g, depending on the source convention — amounts are stored as
// declared, never converted). A supplement holds at most one row per
// canonical nutrient name; upserting replaces the whole set.
type Nutrient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplementID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_supplement_nutrient"`
	Name         string    `gorm:"column:nutrient_name;not null;uniqueIndex:idx_supplement_nutrient"`
	Amount       float64   `gorm:"not null"`
	Unit         string    `gorm:"not null"`
	// DailyValue is the percent of the reference daily intake; nil when the
	// catalog defines no reference value for this nutrient.
	DailyValue *float64
}

func (n *Nutrient) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
