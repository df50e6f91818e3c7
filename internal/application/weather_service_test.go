package application

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/infrastructure/openweather"
)

const currentBody = `{
	"cod": 200,
	"name": "London",
	"main": {"temp": 18.5, "feels_like": 17.9, "humidity": 72},
	"weather": [{"description": "light rain"}],
	"wind": {"speed": 4.1}
}`

func forecastEntry(dtTxt string, temp float64, desc string) string {
	return fmt.Sprintf(`{"dt_txt": %q, "main": {"temp": %g}, "weather": [{"description": %q}]}`, dtTxt, temp, desc)
}

// dayOffset returns today's UTC date shifted by the given number of days.
func dayOffset(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func newWeatherServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, currentBody)
		case "/forecast":
			fmt.Fprintf(w, `{"cod": "200", "list": [%s, %s, %s]}`,
				forecastEntry(dayOffset(0)+" 09:00:00", 17.0, "clouds"),
				forecastEntry(dayOffset(1)+" 12:00:00", 21.0, "sun"),
				forecastEntry(dayOffset(1)+" 18:00:00", 16.0, "rain"),
			)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestWeatherService_Lookup(t *testing.T) {
	srv := newWeatherServer(t)
	defer srv.Close()

	history := &fakeSearchHistoryRepo{}
	svc := NewWeatherService(openweather.NewClient(srv.URL, "test-key"), history, nil, time.Minute, nil)

	report, err := svc.Lookup(context.Background(), "London")
	require.NoError(t, err)
	require.Equal(t, "London", report.City)
	require.Equal(t, 18.5, report.Current.Temperature)
	require.Equal(t, "light rain", report.Current.Description)
	require.Equal(t, 4.1, report.Current.WindSpeed)

	require.Len(t, report.Forecast, 2)
	// Today's bucket is replaced by the live observation.
	require.Equal(t, dayOffset(0), report.Forecast[0].Date)
	require.Equal(t, 18.5, report.Forecast[0].Temp)
	// The second day kept the slot nearest noon.
	require.Equal(t, dayOffset(1), report.Forecast[1].Date)
	require.Equal(t, 21.0, report.Forecast[1].Temp)
	require.Equal(t, "sun", report.Forecast[1].Description)

	// The lookup was recorded.
	recent, err := svc.RecentSearches(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "London", recent[0].City)
}

func TestWeatherService_FutureOnlyForecastKeepsTomorrow(t *testing.T) {
	// Near midnight UTC the upstream may return only future days. The live
	// observation must then be prepended as today, not overwrite tomorrow.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, currentBody)
		case "/forecast":
			fmt.Fprintf(w, `{"cod": "200", "list": [%s, %s]}`,
				forecastEntry(dayOffset(1)+" 12:00:00", 21.0, "sun"),
				forecastEntry(dayOffset(2)+" 12:00:00", 19.0, "clouds"),
			)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := NewWeatherService(openweather.NewClient(srv.URL, "k"), &fakeSearchHistoryRepo{}, nil, time.Minute, nil)
	report, err := svc.Lookup(context.Background(), "London")
	require.NoError(t, err)

	require.Len(t, report.Forecast, 3)
	require.Equal(t, dayOffset(0), report.Forecast[0].Date)
	require.Equal(t, 18.5, report.Forecast[0].Temp, "today carries the live observation")
	require.Equal(t, dayOffset(1), report.Forecast[1].Date)
	require.Equal(t, 21.0, report.Forecast[1].Temp, "tomorrow's bucket survives")
	require.Equal(t, dayOffset(2), report.Forecast[2].Date)
}

func TestWeatherService_RepeatLookupsAreRecorded(t *testing.T) {
	srv := newWeatherServer(t)
	defer srv.Close()

	history := &fakeSearchHistoryRepo{}
	svc := NewWeatherService(openweather.NewClient(srv.URL, "k"), history, nil, time.Minute, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Lookup(context.Background(), "London")
		require.NoError(t, err)
	}

	recent, err := svc.RecentSearches(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 2, "every lookup lands in history")
}

func TestWeatherService_CityRequired(t *testing.T) {
	svc := NewWeatherService(openweather.NewClient("http://unused", "k"), &fakeSearchHistoryRepo{}, nil, time.Minute, nil)

	_, err := svc.Lookup(context.Background(), "   ")
	require.ErrorIs(t, err, ErrCityRequired)
}

func TestWeatherService_HistoryFailureIsNotFatal(t *testing.T) {
	srv := newWeatherServer(t)
	defer srv.Close()

	history := &fakeSearchHistoryRepo{failNext: true}
	svc := NewWeatherService(openweather.NewClient(srv.URL, "k"), history, nil, time.Minute, nil)

	report, err := svc.Lookup(context.Background(), "London")
	require.NoError(t, err, "a failed history insert must not fail the lookup")
	require.Equal(t, "London", report.City)
}

func TestWeatherService_HistoryLimit(t *testing.T) {
	history := &fakeSearchHistoryRepo{}
	svc := NewWeatherService(nil, history, nil, time.Minute, nil)

	for _, city := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		require.NoError(t, history.Add(context.Background(), city))
	}
	recent, err := svc.RecentSearches(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 5)
	require.Equal(t, "g", recent[0].City, "newest first")
}

func TestGroupDaily_NearestNoonRegardlessOfOrder(t *testing.T) {
	entries := []openweather.Entry{}
	for _, e := range []struct {
		txt  string
		temp float64
	}{
		// Deliberately out of order.
		{"2026-09-03 21:00:00", 10},
		{"2026-09-02 12:00:00", 20},
		{"2026-09-03 09:00:00", 12},
		{"2026-09-02 03:00:00", 14},
		{"2026-09-03 15:00:00", 13},
	} {
		var entry openweather.Entry
		entry.DtTxt = e.txt
		entry.Main.Temp = e.temp
		entries = append(entries, entry)
	}

	days := groupDaily(entries)
	require.Len(t, days, 2)
	require.Equal(t, "2026-09-02", days[0].Date)
	require.Equal(t, 20.0, days[0].Temp)
	require.Equal(t, "2026-09-03", days[1].Date)
	require.Equal(t, 13.0, days[1].Temp, "15:00 is nearer noon than 09:00 or 21:00")
}

func TestGroupDaily_CapsAtFiveDays(t *testing.T) {
	entries := []openweather.Entry{}
	for day := 1; day <= 7; day++ {
		var entry openweather.Entry
		entry.DtTxt = fmt.Sprintf("2026-09-%02d 12:00:00", day)
		entries = append(entries, entry)
	}
	require.Len(t, groupDaily(entries), 5)
}

func TestWeatherService_UpstreamCityMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"cod": "404", "message": "city not found"}`)
	}))
	defer srv.Close()

	svc := NewWeatherService(openweather.NewClient(srv.URL, "k"), &fakeSearchHistoryRepo{}, nil, time.Minute, nil)
	_, err := svc.Lookup(context.Background(), "Nowhere")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
