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

type BookshelfHandler struct {
	Svc    *application.BookshelfService
	Logger *logrus.Logger
}

func NewBookshelfHandler(svc *application.BookshelfService, logger *logrus.Logger) *BookshelfHandler {
	return &BookshelfHandler{Svc: svc, Logger: logger}
}

type categoryRequest struct {
	Genre string `json:"genre" binding:"required"`
}

type createBookRequest struct {
	Genre       string `json:"genre" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Description string `json:"description"`
}

type updateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

func (h *BookshelfHandler) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toCategoryDTOs(cats), "categories retrieved", nil)
}

func (h *BookshelfHandler) GetCategory(c *gin.Context) {
	cat, err := h.Svc.GetCategory(c.Request.Context(), c.Param("genre"))
	if err != nil {
		respondError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusOK, toCategoryDTO(cat), "category retrieved", nil)
}

func (h *BookshelfHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.CreateCategory(c.Request.Context(), req.Genre)
	if err != nil {
		respondError(c, err, "category already exists")
		return
	}
	response.Success(c, http.StatusCreated, toCategoryDTO(cat), "category created", nil)
}

func (h *BookshelfHandler) RenameCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.RenameCategory(c.Request.Context(), c.Param("genre"), req.Genre)
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toCategoryDTO(cat), "category renamed", nil)
}

func (h *BookshelfHandler) DeleteCategory(c *gin.Context) {
	if err := h.Svc.DeleteCategory(c.Request.Context(), c.Param("genre")); err != nil {
		respondError(c, err, "category not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "category deleted", nil)
}

func (h *BookshelfHandler) ListBooks(c *gin.Context) {
	books, err := h.Svc.ListBooks(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toBookDTOs(books), "books retrieved", nil)
}

func (h *BookshelfHandler) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	book, err := h.Svc.AddBook(c.Request.Context(), application.CreateBookInput{
		Genre:       req.Genre,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "category not found")
		return
	}
	response.Success(c, http.StatusCreated, toBookDTO(book), "book added", nil)
}

func (h *BookshelfHandler) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	book, err := h.Svc.GetBook(c.Request.Context(), c.Param("genre"), id)
	if err != nil {
		respondError(c, err, "book not found")
		return
	}
	response.Success(c, http.StatusOK, toBookDTO(book), "book retrieved", nil)
}

func (h *BookshelfHandler) UpdateBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	book, err := h.Svc.UpdateBook(c.Request.Context(), c.Param("genre"), id, application.UpdateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "book not found")
		return
	}
	response.Success(c, http.StatusOK, toBookDTO(book), "book updated", nil)
}

func (h *BookshelfHandler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	if err := h.Svc.DeleteBook(c.Request.Context(), c.Param("genre"), id); err != nil {
		respondError(c, err, "book not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "book deleted", nil)
}
