// Package openweather is a minimal OpenWeatherMap client covering the two
// endpoints the weather module needs: current conditions and the 5-day /
// 3-hour forecast.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oksasatya/dailyhub/internal/apperrors"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Current is the subset of the /weather response the service consumes.
type Current struct {
	Name string `json:"name"`
	Cod  any    `json:"cod"` // number on success, string on error responses
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Message string `json:"message"`
}

// Forecast is the subset of the /forecast response the service consumes.
type Forecast struct {
	Cod     any     `json:"cod"`
	Message any     `json:"message"`
	List    []Entry `json:"list"`
}

// Entry is one 3-hour forecast slot.
type Entry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	var out Current
	if err := c.get(ctx, "/weather", city, &out); err != nil {
		return nil, err
	}
	if codToInt(out.Cod) != http.StatusOK {
		if codToInt(out.Cod) == http.StatusNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("openweather: %s: %w", out.Message, apperrors.ErrUnavailable)
	}
	return &out, nil
}

func (c *Client) FiveDay(ctx context.Context, city string) (*Forecast, error) {
	var out Forecast
	if err := c.get(ctx, "/forecast", city, &out); err != nil {
		return nil, err
	}
	if codToInt(out.Cod) != http.StatusOK {
		if codToInt(out.Cod) == http.StatusNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("openweather: %v: %w", out.Message, apperrors.ErrUnavailable)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, city string, dest any) error {
	u := fmt.Sprintf("%s%s?q=%s&appid=%s&units=metric", c.BaseURL, path, url.QueryEscape(city), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("openweather: %v: %w", err, apperrors.ErrUnavailable)
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(dest)
}

// codToInt normalizes the API's cod field, which is a JSON number on the
// current-weather endpoint but a quoted string on the forecast endpoint.
func codToInt(v any) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		var n int
		_, _ = fmt.Sscanf(x, "%d", &n)
		return n
	}
	return 0
}
