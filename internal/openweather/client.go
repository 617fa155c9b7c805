// Package openweather provides a client for the OpenWeatherMap API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/unicode/norm"

	"github.com/katiamach/weather-facade-api/internal/logger"
	"github.com/katiamach/weather-facade-api/internal/model"
)

// Upstream errors.
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrServiceUnavailable = errors.New("unable to reach weather service")
)

// ServiceError is returned when the provider answers with an unexpected status.
type ServiceError struct {
	StatusCode int
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("weather service error: status %d", e.StatusCode)
}

// callerGoneError wraps failures caused by the caller's own context, not by the provider.
type callerGoneError struct {
	err error
}

func (e *callerGoneError) Error() string {
	return e.err.Error()
}

func (e *callerGoneError) Unwrap() error {
	return e.err
}

// upstream endpoints
const (
	currentPath   = "/data/2.5/weather"
	forecastPath  = "/data/2.5/forecast"
	pollutionPath = "/data/2.5/air_pollution"
	geocodePath   = "/geo/1.0/direct"
)

// Client fetches weather data from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// New creates new Client.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var gone *callerGoneError
			return err == nil || errors.As(err, &gone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logger.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

// CurrentWeather gets current weather conditions for the given city.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error) {
	params := url.Values{}
	params.Set("q", normalizeCity(city))
	params.Set("units", "metric")

	var payload currentPayload
	err := c.get(ctx, "current", currentPath, params, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toModel(), nil
}

// Forecast gets the 5-day forecast with 3-hour steps for the given city.
func (c *Client) Forecast(ctx context.Context, city string) (*ForecastPayload, error) {
	params := url.Values{}
	params.Set("q", normalizeCity(city))
	params.Set("units", "metric")

	payload := new(ForecastPayload)
	err := c.get(ctx, "forecast", forecastPath, params, payload)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// Geocode finds up to limit locations matching the given query.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]model.City, error) {
	params := url.Values{}
	params.Set("q", normalizeCity(query))
	params.Set("limit", strconv.Itoa(limit))

	var payload []geocodeEntry
	err := c.get(ctx, "geocode", geocodePath, params, &payload)
	if err != nil {
		return nil, err
	}

	cities := make([]model.City, 0, len(payload))
	for _, e := range payload {
		cities = append(cities, model.City{
			Name:    e.Name,
			Country: e.Country,
			State:   e.State,
			Lat:     e.Lat,
			Lon:     e.Lon,
		})
	}

	return cities, nil
}

// AirPollution gets current air pollution data for the given coordinates.
func (c *Client) AirPollution(ctx context.Context, lat, lon float64) (*AirPollutionPayload, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	payload := new(AirPollutionPayload)
	err := c.get(ctx, "air_pollution", pollutionPath, params, payload)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// get performs GET request to the given path and decodes JSON response into dst.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, dst interface{}) error {
	params.Set("appid", c.apiKey)
	u := c.baseURL + path + "?" + params.Encode()

	start := time.Now()
	defer func() {
		upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return c.mapError(endpoint, &callerGoneError{err: err})
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, stripURL(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, &callerGoneError{err: ctxErr}
			}
			return nil, stripURL(err)
		}

		// only provider side failures count against the breaker
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, &ServiceError{StatusCode: resp.StatusCode}
		}

		return resp, nil
	})
	if err != nil {
		return c.mapError(endpoint, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		upstreamRequests.WithLabelValues(endpoint, "not_found").Inc()
		return ErrCityNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		// drain to let the connection be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &ServiceError{StatusCode: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrServiceUnavailable, endpoint, err)
	}

	upstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

func (c *Client) mapError(endpoint string, err error) error {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return serviceErr
	}

	var gone *callerGoneError
	if errors.As(err, &gone) {
		upstreamRequests.WithLabelValues(endpoint, "cancelled").Inc()
		return fmt.Errorf("%s request cancelled: %w", endpoint, gone.err)
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		upstreamRequests.WithLabelValues(endpoint, "rejected").Inc()
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	upstreamRequests.WithLabelValues(endpoint, "unavailable").Inc()
	logger.Error(fmt.Errorf("%s request failed: %v", endpoint, err))

	return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
}

// stripURL drops the request URL from transport errors, it carries the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}

	return err
}

// normalizeCity trims the name and brings it to NFC, so composed and decomposed forms match upstream.
func normalizeCity(city string) string {
	return norm.NFC.String(strings.TrimSpace(city))
}
