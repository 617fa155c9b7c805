package openweather

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-facade-api/internal/forecast"
	"github.com/katiamach/weather-facade-api/internal/logger"
)

const forecastBody = `{
	"city": {"name": "Berlin", "country": "DE", "timezone": 3600},
	"list": [
		{
			"dt": 1709269200,
			"main": {"temp": 4.5, "feels_like": 1.2, "temp_min": 4, "temp_max": 5, "pressure": 1012, "humidity": 80},
			"weather": [{"description": "light rain", "icon": "10n"}],
			"clouds": {"all": 90},
			"wind": {"speed": 3.6, "deg": 240},
			"pop": 0.45,
			"rain": {"3h": 0.3}
		},
		{
			"dt": 1709280000,
			"main": {"temp": 6, "humidity": 70},
			"weather": [{"description": "overcast clouds", "icon": "04d"}],
			"wind": {"speed": 2.1}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, "secret", time.Second)
}

func TestForecast(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, forecastPath, r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		_, _ = w.Write([]byte(forecastBody))
	})

	payload, err := c.Forecast(context.Background(), " Berlin ")
	assert.Nil(t, err)
	assert.Equal(t, "Berlin", payload.City.Name)
	assert.Equal(t, "DE", payload.City.Country)

	items := payload.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 240, items[0].WindDeg)
	assert.Equal(t, 0.3, items[0].Rain3h)
	assert.Equal(t, 0.45, items[0].Pop)
	// absent optional values default to zero
	assert.Equal(t, 0, items[1].WindDeg)
	assert.Equal(t, 0.0, items[1].Rain3h)
	assert.Equal(t, 0.0, items[1].Pop)

	samples, err := payload.Samples()
	assert.Nil(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, int64(1709269200), samples[0].Timestamp)
	assert.Equal(t, 4.5, samples[0].Temperature)
	assert.Equal(t, 80, samples[0].Humidity)
	assert.Equal(t, 3.6, samples[0].WindSpeed)
	assert.Equal(t, "light rain", samples[0].Description)
	assert.Equal(t, "10n", samples[0].Icon)
}

func TestSamplesMissingField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city": {"name": "Berlin"}, "list": [
			{"dt": 1709269200, "main": {"temp": 4.5, "humidity": 80}, "weather": [{"description": "rain", "icon": "10n"}], "wind": {"speed": 1}},
			{"dt": 1709280000, "main": {"humidity": 80}, "weather": [{"description": "rain", "icon": "10n"}], "wind": {"speed": 1}}
		]}`))
	})

	payload, err := c.Forecast(context.Background(), "Berlin")
	assert.Nil(t, err)

	_, err = payload.Samples()

	var malformed *forecast.MalformedSampleError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, "main.temp", malformed.Field)
}

func TestCurrentWeather(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, currentPath, r.URL.Path)

		_, _ = w.Write([]byte(`{
			"name": "Paris",
			"main": {"temp": 12.3, "feels_like": 11, "temp_min": 10, "temp_max": 14, "pressure": 1020, "humidity": 60},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 4.1},
			"clouds": {"all": 0},
			"sys": {"country": "FR", "sunrise": 1709274000, "sunset": 1709314000},
			"timezone": 3600
		}`))
	})

	current, err := c.CurrentWeather(context.Background(), "Paris")
	assert.Nil(t, err)
	assert.Equal(t, "Paris", current.City)
	assert.Equal(t, "FR", current.Country)
	assert.Equal(t, 12.3, current.Temperature)
	assert.Equal(t, "clear sky", current.Description)
	assert.Equal(t, 0, current.WindDeg)
	assert.Equal(t, 0, current.Visibility)
	assert.Equal(t, 3600, current.Timezone)
}

func TestGeocodeAndAirPollution(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case geocodePath:
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"name": "London", "country": "GB", "state": "England", "lat": 51.5, "lon": -0.12}]`))
		case pollutionPath:
			assert.Equal(t, "51.5", r.URL.Query().Get("lat"))
			assert.Equal(t, "-0.12", r.URL.Query().Get("lon"))
			_, _ = w.Write([]byte(`{"list": [{"main": {"aqi": 2}, "components": {"co": 201.94, "no2": 0.77}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	cities, err := c.Geocode(context.Background(), "London", 3)
	assert.Nil(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, "England", cities[0].State)

	pollution, err := c.AirPollution(context.Background(), cities[0].Lat, cities[0].Lon)
	assert.Nil(t, err)
	assert.Len(t, pollution.List, 1)
	assert.Equal(t, 2, pollution.List[0].Main.AQI)
	assert.Equal(t, 201.94, pollution.List[0].Components["co"])
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name           string
		status         int
		expectedError  error
		expectedStatus int
	}{
		{name: "not found", status: http.StatusNotFound, expectedError: ErrCityNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, expectedStatus: http.StatusUnauthorized},
		{name: "server error", status: http.StatusBadGateway, expectedStatus: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := c.Forecast(context.Background(), "Nowhere")
			assert.NotNil(t, err)

			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError))
				return
			}

			var serviceErr *ServiceError
			assert.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, tc.expectedStatus, serviceErr.StatusCode)
		})
	}
}

func TestServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "secret", time.Second)

	_, err := c.CurrentWeather(context.Background(), "Berlin")
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestCircuitBreakerOpens(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := c.Forecast(context.Background(), "Berlin")

		var serviceErr *ServiceError
		assert.True(t, errors.As(err, &serviceErr))
	}

	_, err := c.Forecast(context.Background(), "Berlin")
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestCancelledCallersKeepBreakerClosed(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get("q") == "Slow" {
			<-r.Context().Done()
			return
		}
		_, _ = w.Write([]byte(forecastBody))
	})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 5; i++ {
		_, err := c.Forecast(cancelled, "Berlin")
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, errors.Is(err, ErrServiceUnavailable))
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, err := c.Forecast(ctx, "Slow")
		cancel()
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	}

	payload, err := c.Forecast(context.Background(), "Berlin")
	assert.Nil(t, err)
	assert.Equal(t, "Berlin", payload.City.Name)
}

func TestTransportErrorHidesAPIKey(t *testing.T) {
	var buf bytes.Buffer
	logger.Logger().SetOutput(&buf)
	defer logger.Logger().SetOutput(os.Stdout)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "top-secret-key", time.Second)

	_, err := c.Forecast(context.Background(), "Berlin")
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.False(t, strings.Contains(err.Error(), "top-secret-key"))

	assert.NotEmpty(t, buf.String())
	assert.False(t, strings.Contains(buf.String(), "top-secret-key"))
	assert.False(t, strings.Contains(buf.String(), "appid"))
}

func TestUndecodableResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := c.Forecast(context.Background(), "Berlin")
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestNormalizeCity(t *testing.T) {
	decomposed := "Sa\u0303o Paulo"

	assert.Equal(t, "S\u00e3o Paulo", normalizeCity("  "+decomposed+" "))
}
