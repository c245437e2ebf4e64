// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity fails validation.
	// It is usually wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyName is returned when a user name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyEmail is returned when a user email is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyTitle is returned when a post title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent is returned when post content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrMissingOwner is returned when a post has no owning user ID.
	ErrMissingOwner = errors.New("user_id is required")
)
