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

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, the process
// default logger is used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, name, email
		FROM users
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			s.logger.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	return &user, nil
}

// Create implements store.UserStore.Create.
// Returns store.ErrDuplicateID if an explicitly supplied ID already exists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		s.logger.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var err error
	if user.ID != 0 {
		query := `
			INSERT INTO users (id, name, email)
			VALUES ($1, $2, $3)
		`
		_, err = s.db.ExecContext(ctx, query, user.ID, user.Name, user.Email)
	} else {
		query := `
			INSERT INTO users (name, email)
			VALUES ($1, $2)
			RETURNING id
		`
		err = s.db.QueryRowContext(ctx, query, user.Name, user.Email).Scan(&user.ID)
	}

	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Warn("duplicate user id on create", slog.Int64("user_id", user.ID))
			return fmt.Errorf("%w: %v", store.ErrDuplicateID, err)
		}
		s.logger.Error("failed to create user", slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// Update implements store.UserStore.Update. Nil patch fields map to NULL
// parameters that COALESCE keeps at the stored value, so the merge happens
// in a single atomic statement.
func (s *UserStore) Update(ctx context.Context, id int64, patch store.UserPatch) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name), email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id, patch.Name, patch.Email).
		Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("user not found for update", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	s.logger.Info("user updated", slog.Int64("user_id", id))
	return &user, nil
}

// Delete implements store.UserStore.Delete. Deleting a user that still owns
// posts violates the posts foreign key; that case surfaces as
// store.ErrUserReferenced so callers can report the conflict.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			s.logger.Warn("user delete blocked by existing posts", slog.Int64("user_id", id))
			return fmt.Errorf("%w: %v", store.ErrUserReferenced, err)
		}
		s.logger.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return err
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		s.logger.Debug("user not found for delete", slog.Int64("user_id", id))
		return store.ErrUserNotFound
	}

	s.logger.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
