// Package seed creates sample data for local development and demos.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"

	"posts-api/internal/domain"
	"posts-api/internal/store"
)

const (
	userCount = 5
	postCount = 50
)

// Seeder fills the stores with generated users and posts.
type Seeder struct {
	userStore store.UserStore
	postStore store.PostStore
	logger    *slog.Logger
	faker     *gofakeit.Faker
}

// NewSeeder creates a Seeder over the given stores.
func NewSeeder(userStore store.UserStore, postStore store.PostStore, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Seeder{
		userStore: userStore,
		postStore: postStore,
		logger:    logger.With(slog.String("component", "seeder")),
		faker:     gofakeit.New(0),
	}
}

// Run seeds sample users and posts. It is a no-op when users already exist,
// so repeated startups against the same database stay idempotent.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.userStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("database already has users, skipping seed",
			slog.Int("existing_users", len(existing)))
		return nil
	}

	users := make([]domain.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user := domain.User{
			Name:  s.faker.Name(),
			Email: s.faker.Email(),
		}
		if err := s.userStore.Create(ctx, &user); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}

	for i := 0; i < postCount; i++ {
		owner := users[s.faker.Number(0, len(users)-1)]
		post := domain.Post{
			Title:   s.faker.Sentence(4),
			Content: s.faker.Paragraph(1, 3, 12, " "),
			UserID:  owner.ID,
		}
		if err := s.postStore.Create(ctx, &post); err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
	}

	s.logger.Info("seeded sample data",
		slog.Int("users", userCount),
		slog.Int("posts", postCount))
	return nil
}
