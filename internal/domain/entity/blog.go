package entity

import "time"

// Post is a blog entry. AuthorID is immutable after creation; Author and
// Comments are populated by relation-loading reads.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *UserRef
	Comments  []Comment
}

// Comment is scoped to one post and one author.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *UserRef
}
