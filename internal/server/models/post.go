package models

import "time"

// Post is a single blog entry. AuthorID is fixed at creation; only the
// author may update or delete the post. AuthorEmail and AuthorAvatar are
// denormalized from the users table for display.
type Post struct {
	ID           int64
	Title        string
	Content      string
	Mood         Mood
	AuthorID     int64
	AuthorEmail  string
	AuthorAvatar string
	CreatedAt    time.Time
}
