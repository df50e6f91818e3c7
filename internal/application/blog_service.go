package application

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

// postColors is the pastel palette a new post's card color is drawn from.
var postColors = []string{
	"#fce4ec", "#e3f2fd", "#e8f5e9", "#fff3e0", "#f3e5f5",
	"#f9fbe7", "#e0f7fa", "#fffde7", "#ede7f6", "#f1f8e9",
}

// BlogService owns posts and their comments. Search is served from
// Elasticsearch when a client is configured; indexing is best-effort and
// never fails the write that triggered it.
type BlogService struct {
	Posts        repository.PostRepository
	Comments     repository.CommentRepository
	ES           *elasticsearch.Client
	ESPostsIndex string
	Logger       *logrus.Logger
}

func NewBlogService(posts repository.PostRepository, comments repository.CommentRepository, es *elasticsearch.Client, index string, logger *logrus.Logger) *BlogService {
	return &BlogService{Posts: posts, Comments: comments, ES: es, ESPostsIndex: index, Logger: logger}
}

func (s *BlogService) ListPosts(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

func (s *BlogService) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return s.Posts.GetByID(ctx, id)
}

type CreatePostInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func (s *BlogService) CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	p := &entity.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Title:    in.Title,
		Body:     in.Body,
		Color:    postColors[rand.Intn(len(postColors))],
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	created, err := s.Posts.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, created)
	return created, nil
}

type UpdatePostInput struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Body  *string `json:"body" validate:"omitempty,min=1"`
}

// UpdatePost applies a partial update. A post that exists but belongs to a
// different author is reported as not found, same as a missing one.
func (s *BlogService) UpdatePost(ctx context.Context, actorID, id string, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actorID {
		return nil, apperrors.ErrNotFound
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Body != nil {
		p.Body = *in.Body
	}
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	updated, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, updated)
	return updated, nil
}

func (s *BlogService) DeletePost(ctx context.Context, actorID, id string) error {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != actorID {
		return apperrors.ErrNotFound
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	s.deletePostIndex(ctx, id)
	return nil
}

type CommentInput struct {
	Body string `json:"body" validate:"required,max=250"`
}

func (s *BlogService) AddComment(ctx context.Context, authorID, postID string, in CommentInput) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	c := &entity.Comment{
		ID:       uuid.NewString(),
		PostID:   postID,
		AuthorID: authorID,
		Body:     in.Body,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.Comments.GetByID(ctx, c.ID)
}

func (s *BlogService) UpdateComment(ctx context.Context, actorID, id string, in CommentInput) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.AuthorID != actorID {
		return nil, apperrors.ErrNotFound
	}
	c.Body = in.Body
	if err := s.Comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.Comments.GetByID(ctx, id)
}

func (s *BlogService) DeleteComment(ctx context.Context, actorID, id string) error {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.AuthorID != actorID {
		return apperrors.ErrNotFound
	}
	return s.Comments.Delete(ctx, id)
}

func (s *BlogService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID,
		"author_id":  p.AuthorID,
		"title":      p.Title,
		"body":       p.Body,
		"color":      p.Color,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *BlogService) deletePostIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchPosts performs a multi_match search on title and body.
func (s *BlogService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "body"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
