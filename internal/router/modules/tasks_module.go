package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
)

// TasksModule exposes the to-do list CRUD. Routes are public; a per-IP
// limiter keeps anonymous traffic in check.
type TasksModule struct {
	Handler *handlers.TaskHandler
}

func NewTasksModule(h *handlers.TaskHandler) *TasksModule {
	return &TasksModule{Handler: h}
}

func (m *TasksModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	tasks := rg.Group("/tasks")
	tasks.Use(rl)
	{
		tasks.GET("", m.Handler.List)
		tasks.GET("/:id", m.Handler.Get)
		tasks.POST("", m.Handler.Create)
		tasks.PATCH("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
