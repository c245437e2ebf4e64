package api

// Common request/response structures.

// TokenRequest defines the payload for the token issuance endpoint.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest defines the payload for creating a user. ID is optional;
// when omitted the database assigns the next identifier.
type CreateUserRequest struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateUserRequest defines the sparse payload for updating a user. Absent
// fields leave the stored value untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// CreatePostRequest defines the payload for creating a post. ID is optional;
// UserID must reference an existing user.
type CreatePostRequest struct {
	ID      *int64 `json:"id"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  int64  `json:"user_id" validate:"required"`
}

// UpdatePostRequest defines the sparse payload for updating a post. There is
// no user_id field: post ownership cannot be transferred, and any user_id in
// the request body is dropped during decoding.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
