package models

// Tag is a private note owned by a user.
type Tag struct {
	ID      string `db:"id" json:"id"`
	UserID  string `db:"user_id" json:"user_id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// TagRequest creates or updates a tag.
type TagRequest struct {
	Title   string `json:"title" validate:"max=255"`
	Content string `json:"content"`
}
