package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/application"
	"github.com/oksasatya/dailyhub/pkg/response"
	"github.com/oksasatya/dailyhub/pkg/validation"
)

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type updatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type commentRequest struct {
	Body string `json:"body" binding:"required,max=250"`
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toPostDTOs(posts), "posts retrieved", nil)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.Svc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, toPostDTO(post), "post retrieved", nil)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.CreatePost(c.Request.Context(), c.GetString("userID"), application.CreatePostInput{Title: req.Title, Body: req.Body})
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusCreated, toPostDTO(post), "post created", nil)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.UpdatePost(c.Request.Context(), c.GetString("userID"), c.Param("id"), application.UpdatePostInput{Title: req.Title, Body: req.Body})
	if err != nil {
		respondError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusOK, toPostDTO(post), "post updated", nil)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.Svc.DeletePost(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err, "post not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.AddComment(c.Request.Context(), c.GetString("userID"), c.Param("id"), application.CommentInput{Body: req.Body})
	if err != nil {
		respondError(c, err, "post not found")
		return
	}
	response.Success(c, http.StatusCreated, toCommentDTO(comment), "comment added", nil)
}

func (h *BlogHandler) UpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.UpdateComment(c.Request.Context(), c.GetString("userID"), c.Param("id"), application.CommentInput{Body: req.Body})
	if err != nil {
		respondError(c, err, "comment not found")
		return
	}
	response.Success(c, http.StatusOK, toCommentDTO(comment), "comment updated", nil)
}

func (h *BlogHandler) DeleteComment(c *gin.Context) {
	if err := h.Svc.DeleteComment(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err, "comment not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "comment deleted", nil)
}

func (h *BlogHandler) SearchPosts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q, size)
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
