package api

import (
	"context"
	"fmt"
	"sync"

	"posts-api/internal/domain"
	"posts-api/internal/store"
)

// In-memory store fakes honoring the store interface contracts, including
// the sentinel errors the handlers translate.

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int64]domain.User
	nextID int64
	posts  *fakePostStore

	forcedErr error // when set, every call fails with it
}

type fakePostStore struct {
	mu     sync.Mutex
	posts  map[int64]domain.Post
	nextID int64
	users  *fakeUserStore

	forcedErr error
}

func newFakeStores() (*fakeUserStore, *fakePostStore) {
	us := &fakeUserStore{users: make(map[int64]domain.User)}
	ps := &fakePostStore{posts: make(map[int64]domain.Post)}
	us.posts = ps
	ps.users = us
	return us, ps
}

var _ store.UserStore = (*fakeUserStore)(nil)
var _ store.PostStore = (*fakePostStore)(nil)

func (s *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	users := []domain.User{}
	for _, u := range s.users {
		u.Posts = nil
		users = append(users, u)
	}
	return users, nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	} else if _, exists := s.users[user.ID]; exists {
		return store.ErrDuplicateID
	} else if user.ID > s.nextID {
		s.nextID = user.ID
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Update(ctx context.Context, id int64, patch store.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	s.users[id] = u
	return &u, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	s.posts.mu.Lock()
	defer s.posts.mu.Unlock()
	for _, p := range s.posts.posts {
		if p.UserID == id {
			return store.ErrUserReferenced
		}
	}
	delete(s.users, id)
	return nil
}

func (s *fakePostStore) List(ctx context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	posts := []domain.Post{}
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *fakePostStore) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	posts := []domain.Post{}
	for _, p := range s.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (s *fakePostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &p, nil
}

func (s *fakePostStore) Create(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	s.users.mu.Lock()
	_, userExists := s.users.users[post.UserID]
	s.users.mu.Unlock()
	if !userExists {
		return fmt.Errorf("%w: user with id %d", store.ErrUserNotFound, post.UserID)
	}
	if post.ID == 0 {
		s.nextID++
		post.ID = s.nextID
	} else if _, exists := s.posts[post.ID]; exists {
		return store.ErrDuplicateID
	} else if post.ID > s.nextID {
		s.nextID = post.ID
	}
	s.posts[post.ID] = *post
	return nil
}

func (s *fakePostStore) Update(ctx context.Context, id int64, patch store.PostPatch) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	s.posts[id] = p
	return &p, nil
}

func (s *fakePostStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	if _, ok := s.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}
