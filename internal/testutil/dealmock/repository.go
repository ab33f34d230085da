package dealmock

import (
	"context"
	"errors"

	domain "dealtrack/internal/domain/deal"
)

// Repo is a function-backed mock satisfying deal.Repository. Only the
// methods a test assigns do anything useful.
type Repo struct {
	CreateFn     func(ctx context.Context, d *domain.Deal) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Deal, error)
	ListFn       func(ctx context.Context) ([]domain.Deal, error)
	SaveFn       func(ctx context.Context, d *domain.Deal) error
	DeleteFn     func(ctx context.Context, id string) error
	CountFn      func(ctx context.Context) (int64, error)
	ReplaceAllFn func(ctx context.Context, ds []domain.Deal) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Deal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) List(ctx context.Context) ([]domain.Deal, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Deal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) ReplaceAll(ctx context.Context, ds []domain.Deal) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, ds)
	}
	return nil
}
