package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/umahmood/haversine"

	"github.com/katiamach/weather-facade-api/internal/forecast"
	"github.com/katiamach/weather-facade-api/internal/model"
	"github.com/katiamach/weather-facade-api/internal/openweather"
)

// Version is the API version reported by the service.
const Version = "2.0.0"

const searchLimit = 5

var (
	ErrCityNotFound       = openweather.ErrCityNotFound
	ErrNoAirQualityData   = errors.New("air quality data not available")
	ErrServiceUnavailable = openweather.ErrServiceUnavailable
)

var aqiLabels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

//go:generate mockgen -source=service.go -destination=mock/mock.go Provider

// Provider provides necessary upstream weather methods.
type Provider interface {
	CurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error)
	Forecast(ctx context.Context, city string) (*openweather.ForecastPayload, error)
	Geocode(ctx context.Context, query string, limit int) ([]model.City, error)
	AirPollution(ctx context.Context, lat, lon float64) (*openweather.AirPollutionPayload, error)
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	provider         Provider
	location         *time.Location
	apiKeyConfigured bool
}

// New creates new WeatherService. Forecast dates are derived in the given location.
func New(provider Provider, location *time.Location, apiKeyConfigured bool) *WeatherService {
	return &WeatherService{
		provider:         provider,
		location:         location,
		apiKeyConfigured: apiKeyConfigured,
	}
}

// GetCurrentWeather implements retrieving current weather conditions.
func (ws *WeatherService) GetCurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error) {
	current, err := ws.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return current, nil
}

// GetForecast implements retrieving the detailed 5-day forecast.
func (ws *WeatherService) GetForecast(ctx context.Context, city string) (*model.ForecastResponse, error) {
	payload, err := ws.provider.Forecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return &model.ForecastResponse{
		City:     payload.City.Name,
		Country:  payload.City.Country,
		Timezone: payload.City.Timezone,
		Forecast: payload.Items(),
	}, nil
}

// GetDailyForecast implements retrieving the forecast summarized per day.
func (ws *WeatherService) GetDailyForecast(ctx context.Context, city string) (*model.DailyForecastResponse, error) {
	payload, err := ws.provider.Forecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	samples, err := payload.Samples()
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast samples: %w", err)
	}

	days, err := forecast.AggregateDaily(samples, ws.location)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily forecast: %w", err)
	}

	return &model.DailyForecastResponse{
		City:          payload.City.Name,
		Country:       payload.City.Country,
		DailyForecast: days,
	}, nil
}

// GetHourlyChart implements retrieving chart series for the next hours.
func (ws *WeatherService) GetHourlyChart(ctx context.Context, city string, hours int) (*model.HourlyChartSeries, error) {
	payload, err := ws.provider.Forecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	samples, err := payload.Samples()
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast samples: %w", err)
	}

	series := forecast.SliceHourly(samples, hours, ws.location)
	return &series, nil
}

// GetAirQuality implements retrieving the air quality of a city.
func (ws *WeatherService) GetAirQuality(ctx context.Context, city string) (*model.AirQuality, error) {
	cities, err := ws.provider.Geocode(ctx, city, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get city coordinates: %w", err)
	}
	if len(cities) == 0 {
		return nil, ErrCityNotFound
	}

	pollution, err := ws.provider.AirPollution(ctx, cities[0].Lat, cities[0].Lon)
	if err != nil {
		return nil, fmt.Errorf("failed to get air pollution: %w", err)
	}
	if len(pollution.List) == 0 {
		return nil, ErrNoAirQualityData
	}

	aqi := pollution.List[0].Main.AQI

	label, ok := aqiLabels[aqi]
	if !ok {
		label = "Unknown"
	}

	return &model.AirQuality{
		City:       city,
		AQI:        aqi,
		AQILabel:   label,
		Components: pollution.List[0].Components,
	}, nil
}

// SearchCities finds cities matching the query, nearest first when a reference point is given.
func (ws *WeatherService) SearchCities(ctx context.Context, req *model.SearchRequest) ([]model.City, error) {
	cities, err := ws.provider.Geocode(ctx, req.Query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}

	if req.Near != nil {
		sortByDistance(cities, *req.Near)
	}

	return cities, nil
}

// Health reports service status.
func (ws *WeatherService) Health() *model.Health {
	return &model.Health{
		Status:           "ok",
		APIKeyConfigured: ws.apiKeyConfigured,
		Version:          Version,
	}
}

func sortByDistance(cities []model.City, from model.Coordinates) {
	origin := haversine.Coord{Lat: from.Lat, Lon: from.Lon}

	for i := range cities {
		_, km := haversine.Distance(origin, haversine.Coord{Lat: cities[i].Lat, Lon: cities[i].Lon})
		km = math.Round(km*10) / 10
		cities[i].DistanceKm = &km
	}

	// sort distances from min to max, keeping upstream relevance order on ties
	sort.SliceStable(cities, func(i, j int) bool {
		return *cities[i].DistanceKm < *cities[j].DistanceKm
	})
}
