package domain

// Post represents a single article owned by a User. UserID must reference an
// existing user at creation time and is immutable afterwards.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// Validate checks that the Post carries the fields required for persistence.
func (p *Post) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Content == "" {
		return ErrEmptyContent
	}
	if p.UserID == 0 {
		return ErrMissingOwner
	}
	return nil
}
