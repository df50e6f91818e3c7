package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// In-memory repository fakes backing the service tests. They mirror the
// postgres implementations' contract: missing rows surface as
// apperrors.ErrNotFound, unique violations as apperrors.ErrConflict.

type fakeTaskRepo struct {
	seq   int64
	tasks map[int64]entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]entity.Task{}}
}

func (r *fakeTaskRepo) List(_ context.Context) ([]entity.Task, error) {
	ids := make([]int64, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.tasks[id])
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.seq++
	t.ID = r.seq
	r.tasks[t.ID] = *t
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.tasks[t.ID] = *t
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeNoteRepo struct {
	seq   int64
	notes map[int64]entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[int64]entity.Note{}}
}

func (r *fakeNoteRepo) ListByUser(_ context.Context, userID string) ([]entity.Note, error) {
	out := []entity.Note{}
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id int64, userID string) (*entity.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return &n, nil
}

func (r *fakeNoteRepo) Create(_ context.Context, n *entity.Note) error {
	r.seq++
	n.ID = r.seq
	n.CreatedAt = time.Now()
	r.notes[n.ID] = *n
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, n *entity.Note) error {
	cur, ok := r.notes[n.ID]
	if !ok || cur.UserID != n.UserID {
		return apperrors.ErrNotFound
	}
	r.notes[n.ID] = *n
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id int64, userID string) error {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeCategoryRepo struct {
	seq  int64
	cats map[int64]entity.Category

	books *fakeBookRepo
}

func newFakeCategoryRepo(books *fakeBookRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: map[int64]entity.Category{}, books: books}
}

func (r *fakeCategoryRepo) ListWithBooks(_ context.Context) ([]entity.Category, error) {
	ids := make([]int64, 0, len(r.cats))
	for id := range r.cats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		c := r.cats[id]
		c.Books = []entity.Book{}
		if r.books != nil {
			for _, b := range r.books.books {
				if b.CategoryID == c.ID {
					c.Books = append(c.Books, b)
				}
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByGenre(_ context.Context, genre string) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.Genre == genre {
			cc := c
			return &cc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, cur := range r.cats {
		if cur.Genre == c.Genre {
			return apperrors.ErrConflict
		}
	}
	r.seq++
	c.ID = r.seq
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.cats[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Rename(_ context.Context, id int64, newGenre string) error {
	c, ok := r.cats[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	for _, cur := range r.cats {
		if cur.Genre == newGenre && cur.ID != id {
			return apperrors.ErrConflict
		}
	}
	c.Genre = newGenre
	c.UpdatedAt = time.Now()
	r.cats[id] = c
	if r.books != nil {
		for bid, b := range r.books.books {
			if b.CategoryID == id {
				b.Genre = newGenre
				r.books.books[bid] = b
			}
		}
	}
	return nil
}

func (r *fakeCategoryRepo) DeleteByGenre(_ context.Context, genre string) error {
	for id, c := range r.cats {
		if c.Genre == genre {
			delete(r.cats, id)
			if r.books != nil {
				for bid, b := range r.books.books {
					if b.CategoryID == id {
						delete(r.books.books, bid)
					}
				}
			}
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeBookRepo struct {
	seq   int64
	books map[int64]entity.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[int64]entity.Book{}}
}

func (r *fakeBookRepo) ListAll(_ context.Context) ([]entity.Book, error) {
	ids := make([]int64, 0, len(r.books))
	for id := range r.books {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]entity.Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.books[id])
	}
	return out, nil
}

func (r *fakeBookRepo) GetByGenreAndID(_ context.Context, genre string, id int64) (*entity.Book, error) {
	b, ok := r.books[id]
	if !ok || b.Genre != genre {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBookRepo) Create(_ context.Context, b *entity.Book) error {
	r.seq++
	b.ID = r.seq
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.books[b.ID] = *b
	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *entity.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.books[b.ID] = *b
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, cur := range r.users {
		if cur.Email == u.Email {
			return apperrors.ErrConflict
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) UpdatePrivatePassword(_ context.Context, id string, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PrivatePassword = &hash
	r.users[id] = u
	return nil
}

type fakePostRepo struct {
	posts    map[string]entity.Post
	comments *fakeCommentRepo
	authors  map[string]string // user id -> display name
}

func newFakePostRepo(comments *fakeCommentRepo) *fakePostRepo {
	return &fakePostRepo{posts: map[string]entity.Post{}, comments: comments, authors: map[string]string{}}
}

func (r *fakePostRepo) withRelations(p entity.Post) entity.Post {
	if name, ok := r.authors[p.AuthorID]; ok {
		p.Author = &entity.UserRef{ID: p.AuthorID, Username: name}
	}
	p.Comments = []entity.Comment{}
	if r.comments != nil {
		for _, c := range r.comments.comments {
			if c.PostID == p.ID {
				p.Comments = append(p.Comments, c)
			}
		}
		sort.Slice(p.Comments, func(i, j int) bool {
			return p.Comments[i].CreatedAt.Before(p.Comments[j].CreatedAt)
		})
	}
	return p
}

func (r *fakePostRepo) List(_ context.Context) ([]entity.Post, error) {
	out := []entity.Post{}
	for _, p := range r.posts {
		out = append(out, r.withRelations(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	pp := r.withRelations(p)
	return &pp, nil
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.posts[p.ID] = *p
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	cur, ok := r.posts[p.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	cur.Title = p.Title
	cur.Body = p.Body
	cur.UpdatedAt = time.Now()
	r.posts[p.ID] = cur
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	if r.comments != nil {
		for cid, c := range r.comments.comments {
			if c.PostID == id {
				delete(r.comments.comments, cid)
			}
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[string]entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]entity.Comment{}}
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.comments[c.ID] = *c
	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *entity.Comment) error {
	cur, ok := r.comments[c.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	cur.Body = c.Body
	cur.UpdatedAt = time.Now()
	r.comments[c.ID] = cur
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

type fakeSearchHistoryRepo struct {
	seq      int64
	searches []entity.CitySearch
	failNext bool
}

func (r *fakeSearchHistoryRepo) Add(_ context.Context, city string) error {
	if r.failNext {
		r.failNext = false
		return apperrors.ErrUnavailable
	}
	r.seq++
	r.searches = append(r.searches, entity.CitySearch{ID: r.seq, City: city, SearchedAt: time.Now()})
	return nil
}

func (r *fakeSearchHistoryRepo) Recent(_ context.Context, limit int) ([]entity.CitySearch, error) {
	out := make([]entity.CitySearch, 0, limit)
	for i := len(r.searches) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.searches[i])
	}
	return out, nil
}
