package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name:    "valid user",
			user:    User{Name: "Ada", Email: "ada@example.com"},
			wantErr: nil,
		},
		{
			name:    "empty name",
			user:    User{Email: "ada@example.com"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty email",
			user:    User{Name: "Ada"},
			wantErr: ErrEmptyEmail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr error
	}{
		{
			name:    "valid post",
			post:    Post{Title: "T", Content: "C", UserID: 1},
			wantErr: nil,
		},
		{
			name:    "empty title",
			post:    Post{Content: "C", UserID: 1},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty content",
			post:    Post{Title: "T", UserID: 1},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "missing owner",
			post:    Post{Title: "T", Content: "C"},
			wantErr: ErrMissingOwner,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.post.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
