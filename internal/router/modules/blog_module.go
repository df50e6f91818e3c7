package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

// BlogModule registers posts and comments. Reading and search are public;
// anything that writes requires an authenticated author.
type BlogModule struct {
	Handler *handlers.BlogHandler
	JWT     *helpers.JWTManager
}

func NewBlogModule(h *handlers.BlogHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Handler: h, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/posts", publicLimiter, m.Handler.ListPosts)
	rg.GET("/posts/search", publicLimiter, m.Handler.SearchPosts)
	rg.GET("/posts/:id", publicLimiter, m.Handler.GetPost)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/posts", m.Handler.CreatePost)
		auth.PUT("/posts/:id", m.Handler.UpdatePost)
		auth.DELETE("/posts/:id", m.Handler.DeletePost)
		auth.POST("/posts/:id/comments", m.Handler.AddComment)
		auth.PUT("/comments/:id", m.Handler.UpdateComment)
		auth.DELETE("/comments/:id", m.Handler.DeleteComment)
	}
}
