package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supplement is one commercial product. Barcode is the external uniqueness
// key; generic or manually entered products carry a synthetic barcode
// produced by the adapter that created them.
type Supplement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode     string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Brand       *string
	Category    *string
	ServingSize *string
	ServingUnit *string
	Ingredients *string
	Warnings    *string
	ImageURL    *string
	ProductURL  *string
	Description *string
	// Price is only filled by retailer-page sources; API sources leave it nil.
	Price     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Source    string           `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nutrients []Nutrient `gorm:"foreignKey:SupplementID;constraint:OnDelete:CASCADE"`
}

func (s *Supplement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
