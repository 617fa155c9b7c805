package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-facade-api/internal/forecast"
	"github.com/katiamach/weather-facade-api/internal/logger"
	"github.com/katiamach/weather-facade-api/internal/model"
	"github.com/katiamach/weather-facade-api/internal/openweather"
	"github.com/katiamach/weather-facade-api/internal/service"
)

const defaultHours = 24

var validate = validator.New()

var (
	errCityNotFound       = errors.New("city not found")
	errServiceError       = errors.New("weather service error")
	errServiceUnavailable = errors.New("unable to reach weather service")
	errNoForecastData     = errors.New("no forecast data")
	errInvalidForecast    = errors.New("invalid forecast data received from weather service")
	errNoAirQuality       = errors.New("air quality data not available")
	errInternal           = errors.New("internal server error")
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	GetCurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error)
	GetForecast(ctx context.Context, city string) (*model.ForecastResponse, error)
	GetDailyForecast(ctx context.Context, city string) (*model.DailyForecastResponse, error)
	GetHourlyChart(ctx context.Context, city string, hours int) (*model.HourlyChartSeries, error)
	GetAirQuality(ctx context.Context, city string) (*model.AirQuality, error)
	SearchCities(ctx context.Context, req *model.SearchRequest) ([]model.City, error)
	Health() *model.Health
}

// WeatherServer is a server for weather data processing.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// RootHandler lists available endpoints.
func (s *WeatherServer) RootHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"message": "Comprehensive Weather API",
		"version": service.Version,
		"endpoints": map[string]string{
			"current_weather":   "/weather/current/{city}",
			"detailed_forecast": "/weather/forecast/{city}",
			"daily_forecast":    "/weather/daily/{city}",
			"hourly_chart_data": "/weather/hourly-chart/{city}",
			"air_quality":       "/weather/air-quality/{city}",
			"search_cities":     "/weather/search?q={query}",
			"health":            "/health",
		},
	})
}

// GetCurrentWeatherHandler handles GetCurrentWeather request.
func (s *WeatherServer) GetCurrentWeatherHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromPath(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	current, err := s.service.GetCurrentWeather(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, current)
}

// GetForecastHandler handles GetForecast request.
func (s *WeatherServer) GetForecastHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromPath(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.service.GetForecast(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, res)
}

// GetDailyForecastHandler handles GetDailyForecast request.
func (s *WeatherServer) GetDailyForecastHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromPath(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.service.GetDailyForecast(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, res)
}

// GetHourlyChartHandler handles GetHourlyChart request.
func (s *WeatherServer) GetHourlyChartHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromPath(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	hours, err := validateHours(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	series, err := s.service.GetHourlyChart(r.Context(), city, hours)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, series)
}

// GetAirQualityHandler handles GetAirQuality request.
func (s *WeatherServer) GetAirQualityHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromPath(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	aq, err := s.service.GetAirQuality(r.Context(), city)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrCityNotFound):
		respondErr(w, http.StatusNotFound, errCityNotFound)
		return
	case errors.Is(err, service.ErrServiceUnavailable):
		logger.FromContext(r.Context()).Error(err)
		respondErr(w, http.StatusServiceUnavailable, errServiceUnavailable)
		return
	default:
		logger.FromContext(r.Context()).Error(fmt.Errorf("failed to get air quality: %v", err))
		respondErr(w, http.StatusNotFound, errNoAirQuality)
		return
	}

	respond(w, http.StatusOK, aq)
}

// SearchCitiesHandler handles SearchCities request.
func (s *WeatherServer) SearchCitiesHandler(w http.ResponseWriter, r *http.Request) {
	req, err := validateSearchParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	cities, err := s.service.SearchCities(r.Context(), req)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, cities)
}

// HealthHandler handles Health request.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.service.Health())
}

// respondServiceErr maps service errors to client-visible responses.
func respondServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	var serviceErr *openweather.ServiceError
	var malformed *forecast.MalformedSampleError

	log := logger.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrCityNotFound):
		respondErr(w, http.StatusNotFound, errCityNotFound)
	case errors.Is(err, service.ErrServiceUnavailable):
		log.Error(err)
		respondErr(w, http.StatusServiceUnavailable, errServiceUnavailable)
	case errors.As(err, &serviceErr):
		log.Error(err)
		respondErr(w, serviceErr.StatusCode, errServiceError)
	case errors.Is(err, forecast.ErrEmptyInput):
		respondErr(w, http.StatusNotFound, errNoForecastData)
	case errors.As(err, &malformed):
		log.Error(err)
		respondErr(w, http.StatusBadGateway, errInvalidForecast)
	default:
		log.Error(fmt.Errorf("unexpected service error: %v", err))
		respondErr(w, http.StatusInternalServerError, errInternal)
	}
}

func cityFromPath(r *http.Request) (string, error) {
	city := strings.TrimSpace(mux.Vars(r)["city"])
	if city == "" {
		return "", errors.New("city not provided in path")
	}

	return city, nil
}

type hoursQuery struct {
	Hours int `validate:"gte=0"`
}

func validateHours(params url.Values) (int, error) {
	hoursStr := params.Get("hours")
	if hoursStr == "" {
		return defaultHours, nil
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return 0, errors.New("invalid hours parameter")
	}

	if err := validate.Struct(hoursQuery{Hours: hours}); err != nil {
		return 0, errors.New("hours should not be negative")
	}

	return hours, nil
}

type searchQuery struct {
	Query string   `validate:"required"`
	Lat   *float64 `validate:"required_with=Lon,omitempty,latitude"`
	Lon   *float64 `validate:"required_with=Lat,omitempty,longitude"`
}

func validateSearchParams(params url.Values) (*model.SearchRequest, error) {
	q := searchQuery{Query: strings.TrimSpace(params.Get("q"))}

	for name, dst := range map[string]**float64{"lat": &q.Lat, "lon": &q.Lon} {
		raw := params.Get(name)
		if raw == "" {
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s parameter", name)
		}
		*dst = &v
	}

	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}

	req := &model.SearchRequest{Query: q.Query}
	if q.Lat != nil && q.Lon != nil {
		req.Near = &model.Coordinates{Lat: *q.Lat, Lon: *q.Lon}
	}

	return req, nil
}
