package store

import (
	"context"

	"posts-api/internal/domain"
)

// UserPatch describes a partial update to a user. Nil fields are left
// untouched on the stored row, so a caller can change one field without
// resending the whole entity.
type UserPatch struct {
	Name  *string
	Email *string
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns all users in store order. It returns an empty slice,
	// never nil, when no users exist.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by its unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user. When user.ID is zero the store assigns the
	// next identifier and writes it back; otherwise the supplied ID is used
	// and ErrDuplicateID is returned on collision.
	Create(ctx context.Context, user *domain.User) error

	// Update applies the non-nil fields of patch to the stored row and
	// returns the updated user. Returns ErrUserNotFound if the user does
	// not exist.
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)

	// Delete removes a user by ID. Returns ErrUserNotFound if the user does
	// not exist and ErrUserReferenced if posts still reference it.
	Delete(ctx context.Context, id int64) error
}
