package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string        `mapstructure:"CORS_ORIGINS"`

	// Storage: "mongo" or "memory".
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Timetable extraction.
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	// Mail.
	SendgridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	MailFrom       string `mapstructure:"MAIL_FROM"`
	MailFromName   string `mapstructure:"MAIL_FROM_NAME"`

	// Optional timetable image archive.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL", "168h")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("STORAGE_DRIVER", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "attendai")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_OTP_DB", 2)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "no-reply@attendai.app")
	viper.SetDefault("MAIL_FROM_NAME", "AttendAI")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("CLOUDINARY_FOLDER", "attendai/timetables")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMemoryStore reports whether repositories should be kept in process.
func UsesMemoryStore() bool {
	return strings.EqualFold(AppConfig.StorageDriver, "memory")
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(AppConfig.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
