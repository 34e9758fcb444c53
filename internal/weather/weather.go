// Package weather answers current-conditions lookups for the weather room.
// Conditions come from a provider: the built-in fixture by default, or the
// OpenWeatherMap API when configured.
package weather

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/seojunpark/homeroom/internal/model"
)

// Provider returns the current conditions for a city.
type Provider interface {
	Current(ctx context.Context, city string) (model.Weather, error)
}

// Service wraps a Provider and remembers the last snapshot per city so the
// optional refresh schedule has something to renew.
type Service struct {
	provider Provider
	logger   *log.Logger
	cron     *cron.Cron

	mu    sync.RWMutex
	cache map[string]model.Weather
}

// NewService creates a weather service on the given provider.
func NewService(provider Provider, logger *log.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		cache:    make(map[string]model.Weather),
	}
}

// Current asks the provider for city's conditions and records the snapshot.
func (s *Service) Current(ctx context.Context, city string) (model.Weather, error) {
	w, err := s.provider.Current(ctx, city)
	if err != nil {
		return model.Weather{}, err
	}

	s.mu.Lock()
	s.cache[cityKey(city)] = w
	s.mu.Unlock()
	return w, nil
}

// Cached returns the last snapshot recorded for city, if any.
func (s *Service) Cached(city string) (model.Weather, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.cache[cityKey(city)]
	return w, ok
}

// StartRefresh schedules a periodic re-fetch of every city looked up so far.
// An empty expression disables the schedule.
func (s *Service) StartRefresh(expr string, loc *time.Location) error {
	if expr == "" {
		return nil
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(expr, s.refresh); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

// StopRefresh stops the refresh schedule and waits for a running job.
func (s *Service) StopRefresh() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Service) refresh() {
	s.mu.RLock()
	cities := make([]string, 0, len(s.cache))
	for city := range s.cache {
		cities = append(cities, city)
	}
	s.mu.RUnlock()

	for _, city := range cities {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if _, err := s.Current(ctx, city); err != nil {
			s.logger.Printf("weather: refresh %s: %v", city, err)
		}
		cancel()
	}
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
