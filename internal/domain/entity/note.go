package entity

import "time"

// Note belongs to exactly one user; UserID is set at creation and never
// changes afterwards.
type Note struct {
	ID        int64
	UserID    string
	Title     string
	Content   string
	Color     string
	Pinned    bool
	IsPrivate bool
	CreatedAt time.Time
}
