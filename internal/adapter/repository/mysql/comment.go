package mysql

import (
	"context"

	commentDomain "dealtrack/internal/domain/comment"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *commentDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) Save(ctx context.Context, c *commentDomain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*commentDomain.Comment, error) {
	var out commentDomain.Comment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CommentRepository) ListByDealID(ctx context.Context, dealID string) ([]commentDomain.Comment, error) {
	var out []commentDomain.Comment
	res := r.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&commentDomain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commentDomain.ErrNotFound
	}
	return nil
}
