package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByDealID(ctx context.Context, dealID string) ([]Comment, error)
	Save(ctx context.Context, c *Comment) error
	// Delete returns ErrNotFound when no row matches.
	Delete(ctx context.Context, id string) error
}
