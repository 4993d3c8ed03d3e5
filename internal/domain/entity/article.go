// Package entity defines the core domain entities of the news database.
// Each entity maps to exactly one table; ID is the generated primary key
// and is filled in once the row has been inserted.
package entity

import "time"

// Article represents a news article stored in the "first" table.
// CategoryID, AuthorID and EditorID reference existing rows; the
// references are enforced by the database, not by this package.
type Article struct {
	ID         int64
	CategoryID int64
	AuthorID   int64
	EditorID   int64
	Datetime   time.Time
	Title      string
	Body       string
	Link       string
}

// Image is a picture attached to an article.
type Image struct {
	ID       int64
	FirstID  int64 // references Article.ID
	ImageURL string
}

// Summary is a short text digest of an article.
type Summary struct {
	ID          int64
	FirstID     int64 // references Article.ID
	SummaryText string
}
