package usermock

import (
	"context"
	"errors"

	domain "dealtrack/internal/domain/user"
)

// Repo is a function-backed mock satisfying user.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, id string) (*domain.User, error)
	UpsertFn  func(ctx context.Context, u *domain.User) error
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Upsert(ctx context.Context, u *domain.User) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, u)
	}
	return nil
}
