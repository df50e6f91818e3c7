package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/container"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/interface/middleware"
)

// WeatherModule registers the city lookup and its search history. The
// per-IP limiter is tighter here since every miss costs an upstream call.
type WeatherModule struct {
	Handler *handlers.WeatherHandler
}

func NewWeatherModule(h *handlers.WeatherHandler) *WeatherModule {
	return &WeatherModule{Handler: h}
}

func (m *WeatherModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	weather := rg.Group("/weather")
	weather.Use(rl)
	{
		weather.GET("", m.Handler.Lookup)
		weather.GET("/history", m.Handler.History)
	}
}
