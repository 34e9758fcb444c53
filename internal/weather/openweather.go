package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/seojunpark/homeroom/internal/model"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeather fetches current conditions from the OpenWeatherMap API.
type OpenWeather struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeather creates the API-backed provider.
func NewOpenWeather(apiKey string) *OpenWeather {
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

// Current fetches city's conditions in metric units.
func (p *OpenWeather) Current(ctx context.Context, city string) (model.Weather, error) {
	endpoint := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", p.baseURL, url.QueryEscape(city), p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Weather{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.Weather{}, fmt.Errorf("fetch weather for %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Weather{}, ErrUnknownCity
	}
	if resp.StatusCode != http.StatusOK {
		return model.Weather{}, fmt.Errorf("fetch weather for %s: status %d", city, resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}

	w := model.Weather{
		City:        body.Name,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		Lat:         body.Coord.Lat,
		Lon:         body.Coord.Lon,
		FetchedAt:   time.Now(),
	}
	if len(body.Weather) > 0 {
		w.Condition = body.Weather[0].Main
		w.Description = body.Weather[0].Description
		w.Icon = body.Weather[0].Icon
	}
	return w, nil
}
