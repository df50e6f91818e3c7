package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

// NotesModule registers the owner-scoped notes CRUD. Every route requires
// an authenticated user.
type NotesModule struct {
	Handler *handlers.NoteHandler
	JWT     *helpers.JWTManager
}

func NewNotesModule(h *handlers.NoteHandler, jwt *helpers.JWTManager) *NotesModule {
	return &NotesModule{Handler: h, JWT: jwt}
}

func (m *NotesModule) Register(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")
	notes.Use(middleware.Auth(container.GetRedis(), m.JWT))
	notes.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		notes.GET("", m.Handler.List)
		notes.GET("/:id", m.Handler.Get)
		notes.POST("", m.Handler.Create)
		notes.PUT("/:id", m.Handler.Update)
		notes.DELETE("/:id", m.Handler.Delete)
	}
}
