package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend and provider choices. Defaults keep every integration local so the
// app runs fully offline: memory stores, fixture weather, mock extractor,
// notifier off. Real backends are opt-in by configuration.
const (
	BackendMemory = "memory"
	BackendGorm   = "gorm"
	BackendMongo  = "mongo"

	WeatherFixture     = "fixture"
	WeatherOpenWeather = "openweather"

	ExtractorMock   = "mock"
	ExtractorOpenAI = "openai"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	OwnerID string

	NotesBackend  string
	TodosBackend  string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string

	WeatherProvider    string
	OpenWeatherAPIKey  string
	WeatherRefreshCron string

	ExtractorProvider string
	OpenAIAPIKey      string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	NotifyWhatsAppTo     string

	LoadingDelay  time.Duration
	LocalTimezone *time.Location
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		OwnerID: getenvDefault("HOMEROOM_OWNER", "guest-owner"),

		NotesBackend:  choiceEnv("NOTES_BACKEND", BackendMemory, BackendMemory, BackendGorm),
		TodosBackend:  choiceEnv("TODOS_BACKEND", BackendMemory, BackendMemory, BackendGorm, BackendMongo),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      getenvDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenvDefault("MONGO_DATABASE", "homeroom"),

		WeatherProvider:    choiceEnv("WEATHER_PROVIDER", WeatherFixture, WeatherFixture, WeatherOpenWeather),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherRefreshCron: os.Getenv("WEATHER_REFRESH_CRON"),

		ExtractorProvider: choiceEnv("EXTRACTOR_PROVIDER", ExtractorMock, ExtractorMock, ExtractorOpenAI),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		NotifyWhatsAppTo:     os.Getenv("NOTIFY_WHATSAPP_TO"),

		LoadingDelay:  time.Duration(ParseIntEnv("LOADING_DELAY_MS", 3000)) * time.Millisecond,
		LocalTimezone: location,
	}
}

// NotifierConfigured reports whether every value the WhatsApp notifier needs
// is present.
func (c *Config) NotifierConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppNumber != "" && c.NotifyWhatsAppTo != ""
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// choiceEnv reads an environment variable that must be one of allowed,
// logging and falling back to def on anything else.
func choiceEnv(key, def string, allowed ...string) string {
	value := getenvDefault(key, def)
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	log.Printf("config: unknown %s=%q, defaulting to %q", key, value, def)
	return def
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}
