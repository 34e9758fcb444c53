package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/seojunpark/homeroom/internal/app"
	"github.com/seojunpark/homeroom/internal/config"
	"github.com/seojunpark/homeroom/internal/extract"
	"github.com/seojunpark/homeroom/internal/model"
	"github.com/seojunpark/homeroom/internal/notify"
	"github.com/seojunpark/homeroom/internal/room"
	"github.com/seojunpark/homeroom/internal/store"
	"github.com/seojunpark/homeroom/internal/weather"
)

func main() {
	// stdout belongs to the session screen, so logs go to stderr.
	logger := log.New(os.Stderr, "[homeroom] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	noteStore, todoStore, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("store init failed: %v", err)
	}
	defer closeStores()
	seedDemoData(ctx, cfg, noteStore, todoStore)

	weatherSvc := weather.NewService(newWeatherProvider(cfg, logger), logger)
	if err := weatherSvc.StartRefresh(cfg.WeatherRefreshCron, cfg.LocalTimezone); err != nil {
		logger.Fatalf("weather refresh start: %v", err)
	}
	defer weatherSvc.StopRefresh()

	extractor := newExtractor(cfg, logger)
	notifier := newNotifier(cfg, logger)
	schedules := store.NewScheduleLog()

	lessons := []room.Room{
		room.NewProfiles(),
		room.NewCounter(),
		room.NewLoading(cfg.LoadingDelay),
		room.NewNotes(noteStore),
		room.NewTodos(todoStore, cfg.OwnerID),
		room.NewWeather(weatherSvc),
		room.NewExtract(extractor, schedules, notifier, logger),
	}
	home := room.NewHome(lessons...)

	all := make([]room.Room, 0, len(lessons)+2)
	all = append(all, home)
	all = append(all, lessons...)
	all = append(all, room.NewDetail())
	router := room.NewRouter(all...)

	session := app.New(logger, router, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("session error: %v", err)
	}
	logger.Println("shutting down...")
}

// openStores builds the note and todo stores for the configured backends
// and returns a close function for whatever needs disconnecting.
func openStores(ctx context.Context, cfg *config.Config, logger *log.Logger) (store.NoteStore, store.TodoStore, func(), error) {
	var (
		notes     store.NoteStore
		todos     store.TodoStore
		closeFunc = func() {}
	)

	var db *gorm.DB
	if cfg.NotesBackend == config.BackendGorm || cfg.TodosBackend == config.BackendGorm {
		opened, err := store.OpenGorm(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open gorm: %w", err)
		}
		db = opened
	}

	switch cfg.NotesBackend {
	case config.BackendGorm:
		notes = store.NewGormNoteStore(db)
		logger.Printf("notes backend: gorm")
	default:
		notes = store.NewMemoryNoteStore()
		logger.Printf("notes backend: memory")
	}

	switch cfg.TodosBackend {
	case config.BackendGorm:
		todos = store.NewGormTodoStore(db)
		logger.Printf("todos backend: gorm")
	case config.BackendMongo:
		client, err := store.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open mongo: %w", err)
		}
		todos = store.NewMongoTodoStore(client.Database(cfg.MongoDatabase))
		closeFunc = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Printf("mongo disconnect: %v", err)
			}
		}
		logger.Printf("todos backend: mongo (%s)", cfg.MongoDatabase)
	default:
		todos = store.NewMemoryTodoStore()
		logger.Printf("todos backend: memory")
	}

	return notes, todos, closeFunc, nil
}

func newWeatherProvider(cfg *config.Config, logger *log.Logger) weather.Provider {
	if cfg.WeatherProvider == config.WeatherOpenWeather {
		if cfg.OpenWeatherAPIKey != "" {
			logger.Printf("weather provider: openweather")
			return weather.NewOpenWeather(cfg.OpenWeatherAPIKey)
		}
		logger.Printf("weather provider: openweather selected but OPENWEATHER_API_KEY is empty, using fixture")
	}
	fixture := weather.NewFixture()
	logger.Printf("weather provider: fixture (%s)", strings.Join(fixture.Cities(), ", "))
	return fixture
}

func newExtractor(cfg *config.Config, logger *log.Logger) extract.Extractor {
	if cfg.ExtractorProvider == config.ExtractorOpenAI {
		logger.Printf("extractor: openai")
		return extract.NewOpenAI(cfg.OpenAIAPIKey, cfg.LocalTimezone)
	}
	logger.Printf("extractor: mock")
	return extract.NewMock()
}

func newNotifier(cfg *config.Config, logger *log.Logger) notify.Notifier {
	if cfg.NotifierConfigured() {
		logger.Printf("notifier: whatsapp")
		return notify.NewWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, cfg.NotifyWhatsAppTo, logger)
	}
	return notify.NewNoop()
}

// seedDemoData gives the in-memory backends something to show on first
// entry. Configured backends keep whatever they already hold.
func seedDemoData(ctx context.Context, cfg *config.Config, notes store.NoteStore, todos store.TodoStore) {
	if cfg.NotesBackend == config.BackendMemory {
		_, _ = notes.Create(ctx, model.Note{Title: "준비물", Content: "체육복, 물통"})
		_, _ = notes.Create(ctx, model.Note{Title: "공지", Content: "금요일 단축 수업"})
	}
	if cfg.TodosBackend == config.BackendMemory {
		_, _ = todos.Create(ctx, model.Todo{Title: "수학 숙제 제출", OwnerID: cfg.OwnerID})
		_, _ = todos.Create(ctx, model.Todo{Title: "독서록 쓰기", OwnerID: cfg.OwnerID})
	}
}
