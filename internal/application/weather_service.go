package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
	repo "github.com/oksasatya/dailyhub/internal/domain/repository"
	"github.com/oksasatya/dailyhub/internal/infrastructure/openweather"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

var ErrCityRequired = errors.New("city is required")

const historyLimit = 5

// WeatherService fetches current conditions plus a 5-day forecast from
// OpenWeatherMap, records each successful lookup, and caches responses in
// redis so repeated lookups don't hammer the upstream.
type WeatherService struct {
	API      *openweather.Client
	History  repo.SearchHistoryRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewWeatherService(api *openweather.Client, history repo.SearchHistoryRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *WeatherService {
	return &WeatherService{API: api, History: history, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type DailyForecast struct {
	Date        string  `json:"date"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
}

type WeatherReport struct {
	City     string            `json:"city"`
	Current  CurrentConditions `json:"current"`
	Forecast []DailyForecast   `json:"forecast"`
}

func weatherCacheKey(city string) string {
	return "weather:city:" + strings.ToLower(city)
}

func (s *WeatherService) Lookup(ctx context.Context, city string) (*WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrCityRequired
	}

	if s.Redis != nil {
		var cached WeatherReport
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, weatherCacheKey(city), &cached); err == nil && ok {
			s.recordSearch(ctx, city)
			return &cached, nil
		}
	}

	current, err := s.API.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	s.recordSearch(ctx, city)

	forecast, err := s.API.FiveDay(ctx, city)
	if err != nil {
		return nil, err
	}

	report := &WeatherReport{
		City: current.Name,
		Current: CurrentConditions{
			Temperature: current.Main.Temp,
			Description: firstDescription(current.Weather),
			FeelsLike:   current.Main.FeelsLike,
			Humidity:    current.Main.Humidity,
			WindSpeed:   current.Wind.Speed,
		},
		Forecast: groupDaily(forecast.List),
	}

	// Today's bucket carries the live observation. Near midnight UTC the
	// upstream may only return future days, in which case today is prepended
	// rather than clobbering tomorrow's bucket.
	today := time.Now().UTC().Format("2006-01-02")
	live := DailyForecast{
		Date:        today,
		Temp:        current.Main.Temp,
		Description: report.Current.Description,
	}
	if len(report.Forecast) > 0 && report.Forecast[0].Date == today {
		report.Forecast[0] = live
	} else {
		report.Forecast = append([]DailyForecast{live}, report.Forecast...)
		if len(report.Forecast) > 5 {
			report.Forecast = report.Forecast[:5]
		}
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, weatherCacheKey(city), report, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("weather cache write failed")
		}
	}

	return report, nil
}

// recordSearch is best-effort; a failed insert doesn't fail the lookup.
func (s *WeatherService) recordSearch(ctx context.Context, city string) {
	if err := s.History.Add(ctx, city); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("city", city).Warn("record search failed")
	}
}

// groupDaily buckets 3-hour forecast slots by calendar day and keeps the
// slot nearest 12:00 for each, so the result does not depend on the order
// entries arrive in. At most five days are returned, in date order.
func groupDaily(entries []openweather.Entry) []DailyForecast {
	type slot struct {
		entry openweather.Entry
		hour  int
	}
	best := map[string]slot{}
	dates := make([]string, 0, 8)

	for _, e := range entries {
		t, err := time.Parse("2006-01-02 15:04:05", e.DtTxt)
		if err != nil {
			continue
		}
		day := t.Format("2006-01-02")
		cand := slot{entry: e, hour: t.Hour()}
		cur, ok := best[day]
		if !ok {
			best[day] = cand
			dates = append(dates, day)
			continue
		}
		if distanceFromNoon(cand.hour) < distanceFromNoon(cur.hour) {
			best[day] = cand
		}
	}

	sort.Strings(dates)
	if len(dates) > 5 {
		dates = dates[:5]
	}

	out := make([]DailyForecast, 0, len(dates))
	for _, day := range dates {
		e := best[day].entry
		out = append(out, DailyForecast{
			Date:        day,
			Temp:        e.Main.Temp,
			Description: firstDescription(e.Weather),
		})
	}
	return out
}

func distanceFromNoon(hour int) int {
	d := hour - 12
	if d < 0 {
		return -d
	}
	return d
}

func firstDescription(weather []struct {
	Description string `json:"description"`
}) string {
	if len(weather) == 0 {
		return "N/A"
	}
	return weather[0].Description
}

// RecentSearches returns the latest lookups, newest first.
func (s *WeatherService) RecentSearches(ctx context.Context) ([]entity.CitySearch, error) {
	return s.History.Recent(ctx, historyLimit)
}
