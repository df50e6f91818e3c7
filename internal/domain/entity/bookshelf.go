package entity

import "time"

// Category groups books by genre. Genre is stored upper-cased and trimmed
// and is unique in that normalized form. Deleting a category deletes its
// books.
type Category struct {
	ID        int64
	Genre     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Books     []Book
}

// Book lives under one category. DatePublished is a YYYY-MM-DD date string
// assigned at creation.
type Book struct {
	ID            int64
	CategoryID    int64
	Title         string
	Author        string
	Description   string
	Genre         string
	DatePublished string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
