package handlers

import (
	"time"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// Response shapes. Entities stay tag-free; the wire format is decided here.

type taskDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func toTaskDTO(t *entity.Task) taskDTO {
	return taskDTO{ID: t.ID, Title: t.Title, Completed: t.Completed}
}

func toTaskDTOs(tasks []entity.Task) []taskDTO {
	out := make([]taskDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskDTO(&tasks[i]))
	}
	return out
}

type noteDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

func toNoteDTO(n *entity.Note) noteDTO {
	return noteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		Pinned:    n.Pinned,
		IsPrivate: n.IsPrivate,
		CreatedAt: n.CreatedAt,
	}
}

func toNoteDTOs(notes []entity.Note) []noteDTO {
	out := make([]noteDTO, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteDTO(&notes[i]))
	}
	return out
}

type bookDTO struct {
	ID            int64     `json:"id"`
	CategoryID    int64     `json:"category_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Genre         string    `json:"genre"`
	DatePublished string    `json:"date_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toBookDTO(b *entity.Book) bookDTO {
	return bookDTO{
		ID:            b.ID,
		CategoryID:    b.CategoryID,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Genre:         b.Genre,
		DatePublished: b.DatePublished,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toBookDTOs(books []entity.Book) []bookDTO {
	out := make([]bookDTO, 0, len(books))
	for i := range books {
		out = append(out, toBookDTO(&books[i]))
	}
	return out
}

type categoryDTO struct {
	ID        int64     `json:"id"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Books     []bookDTO `json:"books"`
}

func toCategoryDTO(c *entity.Category) categoryDTO {
	return categoryDTO{
		ID:        c.ID,
		Genre:     c.Genre,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Books:     toBookDTOs(c.Books),
	}
}

func toCategoryDTOs(cats []entity.Category) []categoryDTO {
	out := make([]categoryDTO, 0, len(cats))
	for i := range cats {
		out = append(out, toCategoryDTO(&cats[i]))
	}
	return out
}

type authorDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type commentDTO struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	Body      string     `json:"body"`
	Author    *authorDTO `json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toCommentDTO(c *entity.Comment) commentDTO {
	dto := commentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		dto.Author = &authorDTO{ID: c.Author.ID, Username: c.Author.Username}
	}
	return dto
}

func toCommentDTOs(comments []entity.Comment) []commentDTO {
	out := make([]commentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentDTO(&comments[i]))
	}
	return out
}

type postDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Color     string       `json:"color"`
	Author    *authorDTO   `json:"author,omitempty"`
	Comments  []commentDTO `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func toPostDTO(p *entity.Post) postDTO {
	dto := postDTO{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Color:     p.Color,
		Comments:  toCommentDTOs(p.Comments),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil {
		dto.Author = &authorDTO{ID: p.Author.ID, Username: p.Author.Username}
	}
	return dto
}

func toPostDTOs(posts []entity.Post) []postDTO {
	out := make([]postDTO, 0, len(posts))
	for i := range posts {
		out = append(out, toPostDTO(&posts[i]))
	}
	return out
}

type citySearchDTO struct {
	City       string    `json:"city"`
	SearchedAt time.Time `json:"searched_at"`
}

func toCitySearchDTOs(searches []entity.CitySearch) []citySearchDTO {
	out := make([]citySearchDTO, 0, len(searches))
	for _, s := range searches {
		out = append(out, citySearchDTO{City: s.City, SearchedAt: s.SearchedAt})
	}
	return out
}
