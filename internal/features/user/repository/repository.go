package repository

import (
	"context"
	"errors"

	"taskboard-backend/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

// Column names accepted by Update.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldAvatar        = "avatar"
	FieldWalletAddress = "wallet_address"
	FieldRole          = "role"
)

// UserRepository persists users. Constraint violations surface as
// database.ErrDuplicate and database.ErrReferenced.
type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// FindByWalletAddress matches case-insensitively.
	FindByWalletAddress(ctx context.Context, address string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo UserRepository) error) error
}
