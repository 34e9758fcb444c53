package weather

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seojunpark/homeroom/internal/model"
)

type stubProvider struct {
	w   model.Weather
	err error
}

func (s stubProvider) Current(ctx context.Context, city string) (model.Weather, error) {
	return s.w, s.err
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestFixtureKnownCity(t *testing.T) {
	t.Parallel()

	w, err := NewFixture().Current(context.Background(), "  Seoul ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.City != "Seoul" || w.Condition != "Clouds" {
		t.Fatalf("unexpected conditions: %+v", w)
	}
	if w.FetchedAt.IsZero() {
		t.Fatalf("expected FetchedAt to be stamped")
	}
}

func TestFixtureUnknownCity(t *testing.T) {
	t.Parallel()

	_, err := NewFixture().Current(context.Background(), "Atlantis")
	if !errors.Is(err, ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}
}

func TestServiceRecordsSnapshot(t *testing.T) {
	t.Parallel()

	svc := NewService(NewFixture(), discardLogger())

	if _, ok := svc.Cached("busan"); ok {
		t.Fatalf("expected empty cache before lookup")
	}

	w, err := svc.Current(context.Background(), "Busan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, ok := svc.Cached("BUSAN")
	if !ok {
		t.Fatalf("expected snapshot after lookup")
	}
	if cached.City != w.City || cached.Temperature != w.Temperature {
		t.Fatalf("cached snapshot differs: %+v vs %+v", cached, w)
	}
}

func TestServicePropagatesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("provider down")
	svc := NewService(stubProvider{err: boom}, discardLogger())

	if _, err := svc.Current(context.Background(), "Seoul"); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if _, ok := svc.Cached("Seoul"); ok {
		t.Fatalf("failed lookup must not populate the cache")
	}
}

func TestOpenWeatherParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Seoul" {
			t.Errorf("unexpected city %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("unexpected units %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Seoul",
			"main": {"temp": 21.4, "humidity": 58},
			"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
			"coord": {"lat": 37.57, "lon": 126.98}
		}`))
	}))
	defer srv.Close()

	p := NewOpenWeather("test-key")
	p.baseURL = srv.URL

	w, err := p.Current(context.Background(), "Seoul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.City != "Seoul" || w.Temperature != 21.4 || w.Icon != "01d" {
		t.Fatalf("unexpected weather: %+v", w)
	}
}

func TestOpenWeatherUnknownCity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOpenWeather("test-key")
	p.baseURL = srv.URL

	if _, err := p.Current(context.Background(), "Nowhere"); !errors.Is(err, ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}
}
