package comment

import (
	"context"
	"errors"
	"strings"

	"dealtrack/internal/domain/comment"
	"dealtrack/internal/domain/deal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyContent = errors.New("comment content must not be empty")

type Usecase struct {
	deals    deal.Repository
	comments comment.Repository
}

func NewUsecase(deals deal.Repository, comments comment.Repository) *Usecase {
	return &Usecase{deals: deals, comments: comments}
}

func (u *Usecase) ListForDeal(ctx context.Context, dealID string) ([]comment.Comment, error) {
	if _, err := u.deals.GetByID(ctx, dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deal.ErrNotFound
		}
		return nil, err
	}
	return u.comments.ListByDealID(ctx, dealID)
}

func (u *Usecase) Create(ctx context.Context, dealID, content string) (*comment.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := u.deals.GetByID(ctx, dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deal.ErrNotFound
		}
		return nil, err
	}

	c := &comment.Comment{
		ID:      uuid.NewString(),
		DealID:  dealID,
		Content: content,
	}
	if err := u.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Update(ctx context.Context, id, content string) (*comment.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	c, err := u.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrNotFound
		}
		return nil, err
	}
	c.Content = content
	if err := u.comments.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	return u.comments.Delete(ctx, id)
}
