package domain

// User represents a registered author in the system. IDs are assigned by the
// database unless the caller supplies one explicitly at creation time.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Posts is an informational back-reference populated by an explicit
	// query on single-user fetches; it is never written through the user's
	// own lifecycle.
	Posts []Post `json:"posts,omitempty"`
}

// Validate checks that the User carries the fields required for persistence.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	return nil
}
