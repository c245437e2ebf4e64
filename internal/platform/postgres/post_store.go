package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"posts-api/internal/domain"
	"posts-api/internal/store"
)

// PostStore implements the store.PostStore interface using a PostgreSQL
// database as the storage backend.
type PostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a new PostgreSQL implementation of the PostStore
// interface. If logger is nil, the process default logger is used.
func NewPostStore(db store.DBTX, logger *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostStore implements store.PostStore.
var _ store.PostStore = (*PostStore)(nil)

// List implements store.PostStore.List.
func (s *PostStore) List(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT id, title, content, user_id
		FROM posts
	`
	return s.queryPosts(ctx, query)
}

// ListByUser implements store.PostStore.ListByUser. The owning user's posts
// are loaded with an explicit user_id query rather than a relational
// back-reference, which keeps the object graph acyclic.
func (s *PostStore) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	query := `
		SELECT id, title, content, user_id
		FROM posts
		WHERE user_id = $1
	`
	return s.queryPosts(ctx, query, userID)
}

func (s *PostStore) queryPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID); err != nil {
			s.logger.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// GetByID implements store.PostStore.GetByID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT id, title, content, user_id
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		s.logger.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}

	return &post, nil
}

// Create implements store.PostStore.Create. A foreign key violation on
// insert means the owning user disappeared between the service-level
// existence check and the write, so it is reported as store.ErrUserNotFound.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		s.logger.Warn("post validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var err error
	if post.ID != 0 {
		query := `
			INSERT INTO posts (id, title, content, user_id)
			VALUES ($1, $2, $3, $4)
		`
		_, err = s.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.UserID)
	} else {
		query := `
			INSERT INTO posts (title, content, user_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		err = s.db.QueryRowContext(ctx, query, post.Title, post.Content, post.UserID).
			Scan(&post.ID)
	}

	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Warn("duplicate post id on create", slog.Int64("post_id", post.ID))
			return fmt.Errorf("%w: %v", store.ErrDuplicateID, err)
		}
		if IsForeignKeyViolation(err) {
			s.logger.Warn("foreign key violation during post creation",
				slog.Int64("user_id", post.UserID))
			return fmt.Errorf("%w: user with id %d", store.ErrUserNotFound, post.UserID)
		}
		s.logger.Error("failed to create post", slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("user_id", post.UserID))
	return nil
}

// Update implements store.PostStore.Update. Ownership is immutable: user_id
// is absent from both the patch type and the statement.
func (s *PostStore) Update(ctx context.Context, id int64, patch store.PostPatch) (*domain.Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($2, title), content = COALESCE($3, content)
		WHERE id = $1
		RETURNING id, title, content, user_id
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id, patch.Title, patch.Content).
		Scan(&post.ID, &post.Title, &post.Content, &post.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("post not found for update", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		s.logger.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}

	s.logger.Info("post updated", slog.Int64("post_id", id))
	return &post, nil
}

// Delete implements store.PostStore.Delete.
func (s *PostStore) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM posts
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return err
	}

	if err := CheckRowsAffected(result, "post"); err != nil {
		s.logger.Debug("post not found for delete", slog.Int64("post_id", id))
		return store.ErrPostNotFound
	}

	s.logger.Info("post deleted", slog.Int64("post_id", id))
	return nil
}
