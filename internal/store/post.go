package store

import (
	"context"

	"posts-api/internal/domain"
)

// PostPatch describes a partial update to a post. Nil fields are left
// untouched on the stored row. Ownership is immutable, so there is
// deliberately no UserID field.
type PostPatch struct {
	Title   *string
	Content *string
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// List returns all posts in store order. It returns an empty slice,
	// never nil, when no posts exist.
	List(ctx context.Context) ([]domain.Post, error)

	// ListByUser returns all posts owned by the given user ID.
	ListByUser(ctx context.Context, userID int64) ([]domain.Post, error)

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// Create saves a new post. When post.ID is zero the store assigns the
	// next identifier and writes it back; otherwise the supplied ID is used
	// and ErrDuplicateID is returned on collision. Returns ErrUserNotFound
	// if post.UserID does not reference an existing user.
	Create(ctx context.Context, post *domain.Post) error

	// Update applies the non-nil fields of patch to the stored row and
	// returns the updated post. Returns ErrPostNotFound if the post does
	// not exist.
	Update(ctx context.Context, id int64, patch PostPatch) (*domain.Post, error)

	// Delete removes a post by ID. Returns ErrPostNotFound if the post does
	// not exist.
	Delete(ctx context.Context, id int64) error
}
