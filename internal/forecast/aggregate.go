// Package forecast turns raw 3-hour forecast samples into daily summaries and chart series.
package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katiamach/weather-facade-api/internal/model"
)

const (
	// MaxDays is the number of daily summaries produced at most.
	MaxDays = 5

	// SampleIntervalHours is the time span covered by a single sample.
	SampleIntervalHours = 3

	dateLayout  = "2006-01-02"
	labelLayout = "03:04 PM"
)

// ErrEmptyInput is returned when there are no samples to aggregate.
var ErrEmptyInput = errors.New("no forecast samples to aggregate")

// MalformedSampleError reports a sample lacking a required field or holding an impossible value.
type MalformedSampleError struct {
	Index int
	Field string
}

func (e *MalformedSampleError) Error() string {
	return fmt.Sprintf("malformed forecast sample %d: invalid or missing %s", e.Index, e.Field)
}

type dayBucket struct {
	date        time.Time
	temps       []float64
	humidity    []int
	wind        []float64
	pop         []float64
	description string
	icon        string
}

// AggregateDaily groups samples by calendar date in loc and summarizes at most MaxDays days.
// Days keep the order in which they first appear in samples.
func AggregateDaily(samples []model.ForecastSample, loc *time.Location) ([]model.DailySummary, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	if loc == nil {
		loc = time.Local
	}

	var buckets []*dayBucket
	indexByDate := make(map[string]int)

	for i, s := range samples {
		if err := validateSample(i, s); err != nil {
			return nil, err
		}

		t := time.Unix(s.Timestamp, 0).In(loc)
		key := t.Format(dateLayout)

		idx, ok := indexByDate[key]
		if !ok {
			// first sample of the day decides description and icon
			buckets = append(buckets, &dayBucket{
				date:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
				description: s.Description,
				icon:        s.Icon,
			})
			idx = len(buckets) - 1
			indexByDate[key] = idx
		}

		b := buckets[idx]
		b.temps = append(b.temps, s.Temperature)
		b.humidity = append(b.humidity, s.Humidity)
		b.wind = append(b.wind, s.WindSpeed)
		b.pop = append(b.pop, s.Pop)
	}

	if len(buckets) > MaxDays {
		buckets = buckets[:MaxDays]
	}

	summaries := make([]model.DailySummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, b.summary())
	}

	return summaries, nil
}

func (b *dayBucket) summary() model.DailySummary {
	minTemp, maxTemp := b.temps[0], b.temps[0]
	var sumTemp float64
	for _, t := range b.temps {
		minTemp = math.Min(minTemp, t)
		maxTemp = math.Max(maxTemp, t)
		sumTemp += t
	}

	var sumHumidity int
	for _, h := range b.humidity {
		sumHumidity += h
	}

	var sumWind float64
	for _, w := range b.wind {
		sumWind += w
	}

	var maxPop float64
	for _, p := range b.pop {
		maxPop = math.Max(maxPop, p)
	}

	n := float64(len(b.temps))

	return model.DailySummary{
		Date:        b.date.Format(dateLayout),
		DayName:     b.date.Weekday().String(),
		TempMin:     round1(minTemp),
		TempMax:     round1(maxTemp),
		TempAvg:     round1(sumTemp / n),
		Description: b.description,
		Icon:        b.icon,
		Humidity:    int(math.Round(float64(sumHumidity) / n)),
		WindSpeed:   round1(sumWind / n),
		Pop:         int(math.Round(maxPop * 100)),
	}
}

// SliceHourly returns chart series for the first hours/SampleIntervalHours samples.
func SliceHourly(samples []model.ForecastSample, hours int, loc *time.Location) model.HourlyChartSeries {
	if loc == nil {
		loc = time.Local
	}

	count := hours / SampleIntervalHours
	if count < 0 {
		count = 0
	}
	if count > len(samples) {
		count = len(samples)
	}

	series := model.HourlyChartSeries{
		Labels:       make([]string, 0, count),
		Temperatures: make([]float64, 0, count),
		Humidity:     make([]int, 0, count),
		WindSpeed:    make([]float64, 0, count),
	}

	for _, s := range samples[:count] {
		series.Labels = append(series.Labels, time.Unix(s.Timestamp, 0).In(loc).Format(labelLayout))
		series.Temperatures = append(series.Temperatures, round1(s.Temperature))
		series.Humidity = append(series.Humidity, s.Humidity)
		series.WindSpeed = append(series.WindSpeed, round1(s.WindSpeed))
	}

	return series
}

func validateSample(i int, s model.ForecastSample) error {
	switch {
	case s.Timestamp <= 0:
		return &MalformedSampleError{Index: i, Field: "timestamp"}
	case s.Description == "":
		return &MalformedSampleError{Index: i, Field: "description"}
	case s.Icon == "":
		return &MalformedSampleError{Index: i, Field: "icon"}
	case s.Humidity < 0 || s.Humidity > 100:
		return &MalformedSampleError{Index: i, Field: "humidity"}
	case s.Pop < 0 || s.Pop > 1 || math.IsNaN(s.Pop):
		return &MalformedSampleError{Index: i, Field: "pop"}
	case math.IsNaN(s.Temperature) || math.IsInf(s.Temperature, 0):
		return &MalformedSampleError{Index: i, Field: "temperature"}
	case math.IsNaN(s.WindSpeed) || math.IsInf(s.WindSpeed, 0):
		return &MalformedSampleError{Index: i, Field: "wind speed"}
	}

	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
