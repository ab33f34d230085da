package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// Upsert inserts the user or refreshes the profile fields of an
	// existing row with the same id.
	Upsert(ctx context.Context, u *User) error
}
