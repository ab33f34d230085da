package commentmock

import (
	"context"
	"errors"

	domain "dealtrack/internal/domain/comment"
)

// Repo is a function-backed mock satisfying comment.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, c *domain.Comment) error
	GetByIDFn      func(ctx context.Context, id string) (*domain.Comment, error)
	ListByDealIDFn func(ctx context.Context, dealID string) ([]domain.Comment, error)
	SaveFn         func(ctx context.Context, c *domain.Comment) error
	DeleteFn       func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) ListByDealID(ctx context.Context, dealID string) ([]domain.Comment, error) {
	if m.ListByDealIDFn != nil {
		return m.ListByDealIDFn(ctx, dealID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Comment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
