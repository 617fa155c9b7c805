package openweather

import (
	"github.com/katiamach/weather-facade-api/internal/forecast"
	"github.com/katiamach/weather-facade-api/internal/model"
)

type condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func firstCondition(conditions []condition) condition {
	if len(conditions) == 0 {
		return condition{}
	}
	return conditions[0]
}

type currentPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []condition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int `json:"timezone"`
}

func (p *currentPayload) toModel() *model.CurrentWeather {
	cond := firstCondition(p.Weather)

	return &model.CurrentWeather{
		City:        p.Name,
		Country:     p.Sys.Country,
		Temperature: p.Main.Temp,
		FeelsLike:   p.Main.FeelsLike,
		TempMin:     p.Main.TempMin,
		TempMax:     p.Main.TempMax,
		Description: cond.Description,
		Icon:        cond.Icon,
		Humidity:    p.Main.Humidity,
		Pressure:    p.Main.Pressure,
		WindSpeed:   p.Wind.Speed,
		WindDeg:     p.Wind.Deg,
		Clouds:      p.Clouds.All,
		Visibility:  p.Visibility,
		Sunrise:     p.Sys.Sunrise,
		Sunset:      p.Sys.Sunset,
		Timezone:    p.Timezone,
	}
}

// ForecastPayload is the decoded 5-day forecast response.
type ForecastPayload struct {
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []forecastEntry `json:"list"`
}

// forecastEntry keeps required fields as pointers to tell absent values from zero ones.
type forecastEntry struct {
	Dt   *int64 `json:"dt"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		TempMin   float64  `json:"temp_min"`
		TempMax   float64  `json:"temp_max"`
		Pressure  int      `json:"pressure"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []condition `json:"weather"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed *float64 `json:"speed"`
		Deg   int      `json:"deg"`
	} `json:"wind"`
	Pop  float64 `json:"pop"`
	Rain struct {
		ThreeH float64 `json:"3h"`
	} `json:"rain"`
}

func (e *forecastEntry) missingField() string {
	switch {
	case e.Dt == nil:
		return "dt"
	case e.Main.Temp == nil:
		return "main.temp"
	case e.Main.Humidity == nil:
		return "main.humidity"
	case e.Wind.Speed == nil:
		return "wind.speed"
	case len(e.Weather) == 0:
		return "weather"
	}
	return ""
}

// Items converts forecast entries into detailed forecast items, with zero for absent values.
func (p *ForecastPayload) Items() []model.ForecastItem {
	items := make([]model.ForecastItem, 0, len(p.List))
	for _, e := range p.List {
		cond := firstCondition(e.Weather)

		items = append(items, model.ForecastItem{
			Dt:          deref(e.Dt),
			Temp:        deref(e.Main.Temp),
			FeelsLike:   e.Main.FeelsLike,
			TempMin:     e.Main.TempMin,
			TempMax:     e.Main.TempMax,
			Pressure:    e.Main.Pressure,
			Humidity:    deref(e.Main.Humidity),
			Description: cond.Description,
			Icon:        cond.Icon,
			Clouds:      e.Clouds.All,
			WindSpeed:   deref(e.Wind.Speed),
			WindDeg:     e.Wind.Deg,
			Pop:         e.Pop,
			Rain3h:      e.Rain.ThreeH,
		})
	}

	return items
}

// Samples converts forecast entries into aggregation samples.
// An entry without a required field yields *forecast.MalformedSampleError.
func (p *ForecastPayload) Samples() ([]model.ForecastSample, error) {
	samples := make([]model.ForecastSample, 0, len(p.List))
	for i, e := range p.List {
		if field := e.missingField(); field != "" {
			return nil, &forecast.MalformedSampleError{Index: i, Field: field}
		}

		cond := e.Weather[0]
		samples = append(samples, model.ForecastSample{
			Timestamp:   *e.Dt,
			Temperature: *e.Main.Temp,
			Humidity:    *e.Main.Humidity,
			WindSpeed:   *e.Wind.Speed,
			Pop:         e.Pop,
			Description: cond.Description,
			Icon:        cond.Icon,
		})
	}

	return samples, nil
}

type geocodeEntry struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// AirPollutionPayload is the decoded air pollution response.
type AirPollutionPayload struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components map[string]float64 `json:"components"`
	} `json:"list"`
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
