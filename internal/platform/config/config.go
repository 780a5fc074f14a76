package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage, session and upload backends.
const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	UploadDriverLocal      = "local"
	UploadDriverS3         = "s3"
	UploadDriverCloudinary = "cloudinary"
)

const insecureSessionSecret = "dev-only-session-secret-change-me-please-0123456789"

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DBDriver      string
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool

	// Sessions
	SessionStore      string
	RedisURL          string
	SessionSecret     string
	SessionTTL        time.Duration
	SessionCookieName string
	SessionIssuer     string

	// Attachments
	UploadDriver        string
	UploadDir           string
	MaxUploadBytes      int64
	S3Endpoint          string
	S3Region            string
	S3Bucket            string
	S3Prefix            string
	S3AccessKey         string
	S3SecretKey         string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	// Auth
	LoginRateLimit string
	BcryptCost     int

	RecentEntriesLimit int
	CORSAllowedOrigins []string

	// MetricsPort serves /metrics on its own listener when set.
	MetricsPort string

	// Logging
	LogLevel     string
	LogFile      string
	LogMaxSizeMB int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", DBDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "journal_session")
	v.SetDefault("SESSION_ISSUER", "daily-journal-app")
	v.SetDefault("UPLOAD_DRIVER", UploadDriverLocal)
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_PREFIX", "attachments")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("CLOUDINARY_FOLDER", "journal")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("RECENT_ENTRIES_LIMIT", 3)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("METRICS_PORT", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.DBDriver = strings.ToLower(v.GetString("DB_DRIVER"))
	if cfg.DBDriver != DBDriverPostgres && cfg.DBDriver != DBDriverMemory {
		log.Printf("Warning: Invalid value for DB_DRIVER ('%s'). Defaulting to %s.\n", cfg.DBDriver, DBDriverPostgres)
		cfg.DBDriver = DBDriverPostgres
	}
	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DBDriver == DBDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")

	cfg.SessionStore = strings.ToLower(v.GetString("SESSION_STORE"))
	if cfg.SessionStore != SessionStoreMemory && cfg.SessionStore != SessionStoreRedis {
		log.Printf("Warning: Invalid value for SESSION_STORE ('%s'). Defaulting to %s.\n", cfg.SessionStore, SessionStoreMemory)
		cfg.SessionStore = SessionStoreMemory
	}
	cfg.RedisURL = v.GetString("REDIS_URL")
	if cfg.SessionStore == SessionStoreRedis && cfg.RedisURL == "" {
		log.Println("Warning: SESSION_STORE is redis but REDIS_URL is not set.")
	}

	cfg.SessionSecret = v.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		log.Println("Warning: SESSION_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
		cfg.SessionSecret = insecureSessionSecret
	}

	sessionTTLStr := v.GetString("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to %s.\n", sessionTTLStr, sessionTTL.String())
	}
	cfg.SessionTTL = sessionTTL

	cfg.SessionCookieName = v.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "journal_session"
		log.Printf("Warning: SESSION_COOKIE_NAME not set. Defaulting to %s.\n", cfg.SessionCookieName)
	}
	cfg.SessionIssuer = v.GetString("SESSION_ISSUER")
	if cfg.SessionIssuer == "" {
		cfg.SessionIssuer = "daily-journal-app"
		log.Printf("Warning: SESSION_ISSUER not set. Defaulting to %s.\n", cfg.SessionIssuer)
	}

	cfg.UploadDriver = strings.ToLower(v.GetString("UPLOAD_DRIVER"))
	switch cfg.UploadDriver {
	case UploadDriverLocal, UploadDriverS3, UploadDriverCloudinary:
	default:
		log.Printf("Warning: Invalid value for UPLOAD_DRIVER ('%s'). Defaulting to %s.\n", cfg.UploadDriver, UploadDriverLocal)
		cfg.UploadDriver = UploadDriverLocal
	}
	cfg.UploadDir = v.GetString("UPLOAD_DIR")
	cfg.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	cfg.S3Endpoint = v.GetString("S3_ENDPOINT")
	cfg.S3Region = v.GetString("S3_REGION")
	cfg.S3Bucket = v.GetString("S3_BUCKET")
	cfg.S3Prefix = v.GetString("S3_PREFIX")
	cfg.S3AccessKey = v.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = v.GetString("S3_SECRET_KEY")
	if cfg.UploadDriver == UploadDriverS3 && cfg.S3Bucket == "" {
		log.Println("Warning: UPLOAD_DRIVER is s3 but S3_BUCKET is not set. Attachment uploads will fail.")
	}
	cfg.CloudinaryCloudName = v.GetString("CLOUDINARY_CLOUD_NAME")
	cfg.CloudinaryAPIKey = v.GetString("CLOUDINARY_API_KEY")
	cfg.CloudinaryAPISecret = v.GetString("CLOUDINARY_API_SECRET")
	cfg.CloudinaryFolder = v.GetString("CLOUDINARY_FOLDER")
	if cfg.UploadDriver == UploadDriverCloudinary && cfg.CloudinaryCloudName == "" {
		log.Println("Warning: UPLOAD_DRIVER is cloudinary but CLOUDINARY_CLOUD_NAME is not set. Attachment uploads will fail.")
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.BcryptCost = v.GetInt("BCRYPT_COST")

	cfg.RecentEntriesLimit = v.GetInt("RECENT_ENTRIES_LIMIT")
	if cfg.RecentEntriesLimit <= 0 {
		cfg.RecentEntriesLimit = 3
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.MetricsPort = v.GetString("METRICS_PORT")
	if cfg.IsProduction && cfg.MetricsPort == "" {
		log.Println("Warning: METRICS_PORT not set. /metrics is not exposed in production.")
	}

	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFile = v.GetString("LOG_FILE")
	cfg.LogMaxSizeMB = v.GetInt("LOG_MAX_SIZE_MB")

	return cfg, nil
}
