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

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

type createNoteRequest struct {
	Title     string `json:"title" binding:"required,max=80"`
	Content   string `json:"content" binding:"required"`
	Color     string `json:"color" binding:"omitempty,hexcolor"`
	Pinned    bool   `json:"pinned"`
	IsPrivate bool   `json:"is_private"`
}

type updateNoteRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=80"`
	Content   *string `json:"content"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	Pinned    *bool   `json:"pinned"`
	IsPrivate *bool   `json:"is_private"`
}

func noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid note id", nil)
		return 0, false
	}
	return id, true
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.Svc.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toNoteDTOs(notes), "notes retrieved", nil)
}

func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}
	note, err := h.Svc.Get(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		respondError(c, err, "note not found")
		return
	}
	response.Success(c, http.StatusOK, toNoteDTO(note), "note retrieved", nil)
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	note, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), application.CreateNoteInput{
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		Pinned:    req.Pinned,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusCreated, toNoteDTO(note), "note created", nil)
}

func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	note, err := h.Svc.Update(c.Request.Context(), id, c.GetString("userID"), application.UpdateNoteInput{
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		Pinned:    req.Pinned,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respondError(c, err, "note not found")
		return
	}
	response.Success(c, http.StatusOK, toNoteDTO(note), "note updated", nil)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, c.GetString("userID")); err != nil {
		respondError(c, err, "note not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "note deleted", nil)
}
