package weather

import (
	"context"
	"errors"
	"time"

	"github.com/seojunpark/homeroom/internal/model"
)

// ErrUnknownCity is returned when a provider has no conditions for the city.
var ErrUnknownCity = errors.New("weather: unknown city")

// Fixture serves hand-written conditions for a handful of cities. It stands
// in for the real API so the weather room works offline.
type Fixture struct{}

// NewFixture creates the fixture provider.
func NewFixture() *Fixture {
	return &Fixture{}
}

var fixtureConditions = map[string]model.Weather{
	"seoul": {
		City:        "Seoul",
		Temperature: 23.5,
		Humidity:    60,
		Condition:   "Clouds",
		Description: "scattered clouds",
		Icon:        "03d",
		Lat:         37.5665,
		Lon:         126.9780,
	},
	"busan": {
		City:        "Busan",
		Temperature: 26.1,
		Humidity:    72,
		Condition:   "Clear",
		Description: "clear sky",
		Icon:        "01d",
		Lat:         35.1796,
		Lon:         129.0756,
	},
	"incheon": {
		City:        "Incheon",
		Temperature: 22.9,
		Humidity:    64,
		Condition:   "Mist",
		Description: "mist",
		Icon:        "50d",
		Lat:         37.4563,
		Lon:         126.7052,
	},
	"jeju": {
		City:        "Jeju",
		Temperature: 27.8,
		Humidity:    78,
		Condition:   "Rain",
		Description: "light rain",
		Icon:        "10d",
		Lat:         33.4996,
		Lon:         126.5312,
	},
}

// Current returns the canned conditions for city, or ErrUnknownCity.
func (f *Fixture) Current(ctx context.Context, city string) (model.Weather, error) {
	w, ok := fixtureConditions[cityKey(city)]
	if !ok {
		return model.Weather{}, ErrUnknownCity
	}
	w.FetchedAt = time.Now()
	return w, nil
}

// Cities lists the city names the fixture knows.
func (f *Fixture) Cities() []string {
	return []string{"Seoul", "Busan", "Incheon", "Jeju"}
}
