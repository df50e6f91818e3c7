package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

// AuthModule wires the auth handlers and JWT middleware into routes.
// Public: POST /api/auth/register, /api/auth/login, /api/auth/refresh
// Protected: POST /api/auth/logout, GET /api/profile, private-password flow
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP(), nil) // 20 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)    // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)  // 60 req/min per IP

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.POST("/auth/private-password", m.Handler.SetPrivatePassword)
		auth.POST("/auth/private-password/validate", m.Handler.ValidatePrivatePassword)
	}
}
