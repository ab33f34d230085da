package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByID(ctx context.Context, id string) (*Deal, error)
	List(ctx context.Context) ([]Deal, error)
	Save(ctx context.Context, d *Deal) error
	// Delete removes the deal and its comments. Returns ErrNotFound when no
	// row matches.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// ReplaceAll clears the table and inserts ds in one transaction. Used by
	// the CSV bootstrap importer.
	ReplaceAll(ctx context.Context, ds []Deal) error
}
