package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
)

// BookshelfModule registers categories and books. Like tasks, the shelf is
// a shared public resource guarded only by a per-IP limiter.
type BookshelfModule struct {
	Handler *handlers.BookshelfHandler
}

func NewBookshelfModule(h *handlers.BookshelfHandler) *BookshelfModule {
	return &BookshelfModule{Handler: h}
}

func (m *BookshelfModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	categories := rg.Group("/categories")
	categories.Use(rl)
	{
		categories.GET("", m.Handler.ListCategories)
		categories.GET("/:genre", m.Handler.GetCategory)
		categories.POST("", m.Handler.CreateCategory)
		categories.PATCH("/:genre", m.Handler.RenameCategory)
		categories.DELETE("/:genre", m.Handler.DeleteCategory)
	}

	books := rg.Group("/books")
	books.Use(rl)
	{
		books.GET("", m.Handler.ListBooks)
		books.POST("", m.Handler.CreateBook)
		books.GET("/:genre/:id", m.Handler.GetBook)
		books.PATCH("/:genre/:id", m.Handler.UpdateBook)
		books.DELETE("/:genre/:id", m.Handler.DeleteBook)
	}
}
