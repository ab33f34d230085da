package mysql

import (
	"context"

	commentDomain "dealtrack/internal/domain/comment"
	dealDomain "dealtrack/internal/domain/deal"

	"gorm.io/gorm"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) Save(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DealRepository) GetByID(ctx context.Context, id string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DealRepository) List(ctx context.Context) ([]dealDomain.Deal, error) {
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out)
	return out, res.Error
}

// Delete removes the deal and cascades to its comments in one transaction.
func (r *DealRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&dealDomain.Deal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return dealDomain.ErrNotFound
		}
		return tx.Where("deal_id = ?", id).Delete(&commentDomain.Comment{}).Error
	})
}

func (r *DealRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&dealDomain.Deal{}).Count(&n)
	return n, res.Error
}

// ReplaceAll clears the table and inserts ds in one transaction; the CSV
// bootstrap importer uses it to reseed wholesale.
func (r *DealRepository) ReplaceAll(ctx context.Context, ds []dealDomain.Deal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&dealDomain.Deal{}).Error; err != nil {
			return err
		}
		if len(ds) == 0 {
			return nil
		}
		return tx.CreateInBatches(ds, 100).Error
	})
}
