package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	API    API
	Cache  Cache
	Redis  Redis
	Auth   Auth
	Data   Data
	Log    Log
}

type Server struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

// API describes the upstream FIFA data service.
type API struct {
	BaseURL       string
	Language      string
	CompetitionID string
	SeasonID      string
	StageID       string
	Timeout       time.Duration
	UserAgent     string
}

// Cache holds the backend selection and the per-dataset TTL policy.
// TTLs are configuration constants, not derived values.
type Cache struct {
	Backend     string // "memory" or "redis"
	CalendarTTL time.Duration
	EventsTTL   time.Duration
	SquadTTL    time.Duration
	InjuriesTTL time.Duration
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

// Auth carries the session encryption key and the delegated admin
// credential pair guarding the dashboard API.
type Auth struct {
	SecretKey     string
	AdminUser     string
	AdminPassword string
}

// Data points at locally bundled assets.
type Data struct {
	InjuriesCSV   string
	TeamColorsCSV string
}

type Log struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: Server{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		API: API{
			BaseURL:       getEnv("FIFA_BASE_URL", "https://api.fifa.com/api/v3"),
			Language:      getEnv("FIFA_LANG", "en"),
			CompetitionID: getEnv("FIFA_COMPETITION_ID", "106"),
			SeasonID:      getEnv("FIFA_SEASON_ID", "288439"),
			StageID:       getEnv("FIFA_STAGE_ID", "288440"),
			Timeout:       getDurationEnv("FIFA_TIMEOUT", 20*time.Second),
			// The upstream API rejects unknown clients, so present a browser UA.
			UserAgent: getEnv("FIFA_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/119 Safari/537.36"),
		},
		Cache: Cache{
			Backend:     getEnv("CACHE_BACKEND", "memory"),
			CalendarTTL: getDurationEnv("CACHE_TTL_CALENDAR", time.Hour),
			EventsTTL:   getDurationEnv("CACHE_TTL_EVENTS", 30*time.Minute),
			SquadTTL:    getDurationEnv("CACHE_TTL_SQUAD", 24*time.Hour),
			InjuriesTTL: getDurationEnv("CACHE_TTL_INJURIES", time.Hour),
		},
		Redis: Redis{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Auth: Auth{
			SecretKey:     getEnvRequired("SECRET_KEY"),
			AdminUser:     getEnv("ADMIN_USER", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		},
		Data: Data{
			InjuriesCSV:   getEnv("INJURIES_CSV", "assets/injuries.csv"),
			TeamColorsCSV: getEnv("TEAM_COLORS_CSV", "assets/team_colors.csv"),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// UsesDefaultAdminCredentials reports whether the delegated credential pair
// was left at its development default.
func (c *Config) UsesDefaultAdminCredentials() bool {
	return c.Auth.AdminUser == "admin" && c.Auth.AdminPassword == "admin"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
