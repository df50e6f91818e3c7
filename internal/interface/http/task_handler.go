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

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toTaskDTOs(tasks), "tasks retrieved", nil)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	task, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "task not found")
		return
	}
	response.Success(c, http.StatusOK, toTaskDTO(task), "task retrieved", nil)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Create(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusCreated, toTaskDTO(task), "task created", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Update(c.Request.Context(), id, application.UpdateTaskInput{Title: req.Title, Completed: req.Completed})
	if err != nil {
		respondError(c, err, "task not found")
		return
	}
	response.Success(c, http.StatusOK, toTaskDTO(task), "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "task not found")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted", nil)
}
