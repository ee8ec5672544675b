package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"supplementdb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups that match no supplement row.
var ErrNotFound = errors.New("supplement not found")

// SupplementRepository is the data access contract for the supplement
// store. Services depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via in-memory stubs.
type SupplementRepository interface {
	// Upsert inserts the supplement or fully replaces the existing row
	// sharing its barcode, together with the whole child nutrient set.
	// Old nutrients are never merged with the new list. Runs in a single
	// transaction: a failure leaves either the prior state or the new one.
	Upsert(ctx context.Context, s *model.Supplement, nutrients []model.Nutrient) (uuid.UUID, error)

	FindByBarcode(ctx context.Context, barcode string) (*model.Supplement, error)

	// SearchByName does a case-insensitive substring match on the display
	// name, nutrients preloaded, ordered by name for a stable result.
	SearchByName(ctx context.Context, query string, limit int) ([]model.Supplement, error)

	// ExportAll feeds every supplement (with nutrients) to fn in barcode
	// order, scanning in batches so the full set never sits in memory.
	// A non-nil error from fn stops the scan.
	ExportAll(ctx context.Context, fn func(model.Supplement) error) error

	Count(ctx context.Context) (int64, error)

	// DB exposes the underlying *gorm.DB so callers can open transactions.
	DB() *gorm.DB
}

type supplementRepo struct{ db *gorm.DB }

func NewSupplementRepository(db *gorm.DB) SupplementRepository {
	return &supplementRepo{db: db}
}

const exportBatchSize = 500

func (r *supplementRepo) Upsert(ctx context.Context, s *model.Supplement, nutrients []model.Nutrient) (uuid.UUID, error) {
	if s.Barcode == "" {
		return uuid.Nil, fmt.Errorf("upsert: supplement %q has no barcode", s.Name)
	}

	// Children are inserted explicitly below; keep gorm from cascading the
	// association a second time.
	s.Nutrients = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Supplement
		err := tx.Select("id", "created_at").Where("barcode = ?", s.Barcode).First(&existing).Error
		switch {
		case err == nil:
			// Replace wholesale: same row identity, all fields overwritten,
			// prior nutrient set deleted.
			s.ID = existing.ID
			s.CreatedAt = existing.CreatedAt
			if err := tx.Where("supplement_id = ?", existing.ID).Delete(&model.Nutrient{}).Error; err != nil {
				return fmt.Errorf("delete prior nutrients: %w", err)
			}
			if err := tx.Save(s).Error; err != nil {
				return fmt.Errorf("replace supplement: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(s).Error; err != nil {
				return fmt.Errorf("insert supplement: %w", err)
			}
		default:
			return fmt.Errorf("lookup by barcode: %w", err)
		}

		rows := dedupeByName(nutrients)
		for i := range rows {
			rows[i].ID = uuid.Nil
			rows[i].SupplementID = s.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("insert nutrients: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}

// dedupeByName keeps the last entry per canonical nutrient name so the
// (supplement, nutrient_name) unique index can never fire under correct
// use of Upsert.
func dedupeByName(nutrients []model.Nutrient) []model.Nutrient {
	byName := make(map[string]int, len(nutrients))
	out := make([]model.Nutrient, 0, len(nutrients))
	for _, n := range nutrients {
		if i, dup := byName[n.Name]; dup {
			out[i] = n
			continue
		}
		byName[n.Name] = len(out)
		out = append(out, n)
	}
	return out
}

func (r *supplementRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Supplement, error) {
	var s model.Supplement
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("nutrient_name ASC") }).
		Where("barcode = ?", barcode).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplementRepo) SearchByName(ctx context.Context, query string, limit int) ([]model.Supplement, error) {
	if limit <= 0 {
		limit = 25
	}
	var out []model.Supplement
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("nutrient_name ASC") }).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *supplementRepo) ExportAll(ctx context.Context, fn func(model.Supplement) error) error {
	offset := 0
	for {
		var batch []model.Supplement
		err := r.db.WithContext(ctx).
			Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("nutrient_name ASC") }).
			Order("barcode ASC").
			Limit(exportBatchSize).
			Offset(offset).
			Find(&batch).Error
		if err != nil {
			return fmt.Errorf("export scan at offset %d: %w", offset, err)
		}
		for _, s := range batch {
			if err := fn(s); err != nil {
				return err
			}
		}
		if len(batch) < exportBatchSize {
			return nil
		}
		offset += len(batch)
	}
}

func (r *supplementRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Supplement{}).Count(&n).Error
	return n, err
}

func (r *supplementRepo) DB() *gorm.DB { return r.db }
