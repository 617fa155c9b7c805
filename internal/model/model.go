package model

// ForecastSample is a single 3-hour forecast point as received from the provider.
type ForecastSample struct {
	Timestamp   int64 // epoch seconds, UTC
	Temperature float64
	Humidity    int
	WindSpeed   float64
	Pop         float64 // 0.0-1.0
	Description string
	Icon        string
}

// DailySummary aggregates all samples of one calendar date.
type DailySummary struct {
	Date        string  `json:"date"`
	DayName     string  `json:"day_name"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	TempAvg     float64 `json:"temp_avg"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pop         int     `json:"pop"`
}

// HourlyChartSeries contains parallel series for charting.
type HourlyChartSeries struct {
	Labels       []string  `json:"labels"`
	Temperatures []float64 `json:"temperatures"`
	Humidity     []int     `json:"humidity"`
	WindSpeed    []float64 `json:"wind_speed"`
}

// CurrentWeather contains current conditions for a city.
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Clouds      int     `json:"clouds"`
	Visibility  int     `json:"visibility"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
	Timezone    int     `json:"timezone"`
}

// ForecastItem is a detailed 3-hour forecast entry.
type ForecastItem struct {
	Dt          int64   `json:"dt"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Clouds      int     `json:"clouds"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Pop         float64 `json:"pop"`
	Rain3h      float64 `json:"rain_3h"`
}

// ForecastResponse contains the detailed 5-day forecast.
type ForecastResponse struct {
	City     string         `json:"city"`
	Country  string         `json:"country"`
	Timezone int            `json:"timezone"`
	Forecast []ForecastItem `json:"forecast"`
}

// DailyForecastResponse contains daily summaries for a city.
type DailyForecastResponse struct {
	City          string         `json:"city"`
	Country       string         `json:"country"`
	DailyForecast []DailySummary `json:"daily_forecast"`
}

// AirQuality contains the air quality index and pollutant concentrations.
type AirQuality struct {
	City       string             `json:"city"`
	AQI        int                `json:"aqi"`
	AQILabel   string             `json:"aqi_label"`
	Components map[string]float64 `json:"components"`
}

// City is a geocoding match.
type City struct {
	Name       string   `json:"name"`
	Country    string   `json:"country"`
	State      string   `json:"state,omitempty"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Coordinates is a point on the globe.
type Coordinates struct {
	Lat float64
	Lon float64
}

// SearchRequest contains city search parameters.
type SearchRequest struct {
	Query string
	Near  *Coordinates
}

// Health reports service status.
type Health struct {
	Status           string `json:"status"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	Version          string `json:"version"`
}
