package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/application"
	"github.com/oksasatya/dailyhub/pkg/response"
)

type WeatherHandler struct {
	Svc    *application.WeatherService
	Logger *logrus.Logger
}

func NewWeatherHandler(svc *application.WeatherService, logger *logrus.Logger) *WeatherHandler {
	return &WeatherHandler{Svc: svc, Logger: logger}
}

func (h *WeatherHandler) Lookup(c *gin.Context) {
	report, err := h.Svc.Lookup(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, report, "weather retrieved", nil)
}

func (h *WeatherHandler) History(c *gin.Context) {
	searches, err := h.Svc.RecentSearches(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, toCitySearchDTOs(searches), "search history retrieved", nil)
}
