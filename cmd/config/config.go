package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Upload      UploadConfig
	Minio       MinioConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	AllowedOrigins     []string
	TrustProxy         bool
	RateLimitPerMinute int
	RateLimitBurst     int
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AuthConfig struct {
	JWTSecret        string
	JWTExpiration    time.Duration
	LoginMaxAttempts int
	LoginLockout     time.Duration
}

// MinJWTSecretLength is the shortest HS256 signing secret accepted.
const MinJWTSecretLength = 32

var placeholderSecrets = map[string]bool{
	"change-me":       true,
	"changeme":        true,
	"secret":          true,
	"your-secret-key": true,
	"jwt-secret":      true,
}

// Validate rejects a signing secret that is missing, a known placeholder or
// too short to resist brute force.
func (c AuthConfig) Validate() error {
	secret := strings.TrimSpace(c.JWTSecret)
	switch {
	case secret == "":
		return errors.New("JWT_SECRET is not set")
	case placeholderSecrets[strings.ToLower(secret)]:
		return errors.New("JWT_SECRET is a placeholder value")
	case len(secret) < MinJWTSecretLength:
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}
	return nil
}

type UploadConfig struct {
	Dir         string
	Backend     string
	MaxFileSize int64
	MaxFiles    int
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

const (
	UploadBackendLocal = "local"
	UploadBackendMinio = "minio"
)

// IsDevelopment reports whether detailed error output is allowed.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "production"),
		Server: ServerConfig{
			Port:               getEnv("PORT", "5000"),
			ReadTimeout:        getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:       getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:        getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:    getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:5000", "http://127.0.0.1:5000", "null"}),
			TrustProxy:         getEnvBool("TRUST_PROXY", false),
			RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 60),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017/gg-motors"),
			Database:       getEnv("MONGODB_DATABASE", "gg-motors"),
			ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			JWTExpiration:    getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			LoginMaxAttempts: getEnvInt("AUTH_LOGIN_MAX_ATTEMPTS", 5),
			LoginLockout:     getEnvDuration("AUTH_LOGIN_LOCKOUT", 15*time.Minute),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "uploads"),
			Backend:     getEnv("UPLOAD_BACKEND", UploadBackendLocal),
			MaxFileSize: int64(getEnvInt("UPLOAD_MAX_FILE_SIZE", 5<<20)),
			MaxFiles:    getEnvInt("UPLOAD_MAX_FILES", 10),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "gg-motors-uploads"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
