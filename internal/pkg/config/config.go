package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Storage StorageConfig
	Cache   CacheConfig
	Events  EventsConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// AutoMigrate applies the embedded schema when the server starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"5m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// StorageConfig selects where uploaded images (payment proofs, owner request photos) live.
type StorageConfig struct {
	Backend        string `envconfig:"STORAGE_BACKEND" default:"local"` // local | s3
	MediaRoot      string `envconfig:"MEDIA_ROOT" default:"./media"`
	MediaURL       string `envconfig:"MEDIA_URL" default:"/media/"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	S3Bucket       string `envconfig:"S3_BUCKET" default:""`
	S3Region       string `envconfig:"S3_REGION" default:"sa-east-1"`
	S3Endpoint     string `envconfig:"S3_ENDPOINT" default:""`
	S3Prefix       string `envconfig:"S3_PREFIX" default:""`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY_ID" default:""`
	S3SecretKey    string `envconfig:"S3_SECRET_ACCESS_KEY" default:""`
	S3PublicURL    string `envconfig:"S3_PUBLIC_URL" default:""`
}

type CacheConfig struct {
	RedisURL    string        `envconfig:"REDIS_URL" default:""`
	CountersTTL time.Duration `envconfig:"CACHE_COUNTERS_TTL" default:"30s"`
	KeyPrefix   string        `envconfig:"CACHE_KEY_PREFIX" default:"ifuut"`
}

type EventsConfig struct {
	AMQPURL  string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"ifuut.events"`
}

type AdminConfig struct {
	SiteHeader string `envconfig:"ADMIN_SITE_HEADER" default:"🏟️ IFUUT — Painel Administrativo"`
	SiteTitle  string `envconfig:"ADMIN_SITE_TITLE" default:"IFUUT Administração"`
	IndexTitle string `envconfig:"ADMIN_INDEX_TITLE" default:"Painel de Controle Esportivo"`
	SiteURL    string `envconfig:"ADMIN_SITE_URL" default:"/"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c JWTConfig) Durations() (access, refresh time.Duration, err error) {
	access, err = time.ParseDuration(c.AccessTokenDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	refresh, err = time.ParseDuration(c.RefreshTokenDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	return access, refresh, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate rejects combinations envconfig cannot express with tags alone.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "local":
		if c.Storage.MediaRoot == "" {
			return fmt.Errorf("MEDIA_ROOT is required when STORAGE_BACKEND=local")
		}
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want local or s3)", c.Storage.Backend)
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if _, _, err := c.JWT.Durations(); err != nil {
		return err
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-testing-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Storage: StorageConfig{
			Backend:        "local",
			MediaRoot:      "./media-test",
			MediaURL:       "/media/",
			MaxUploadBytes: 1 << 20,
		},
		Cache: CacheConfig{
			CountersTTL: 30 * time.Second,
			KeyPrefix:   "ifuut-test",
		},
		Events: EventsConfig{
			Exchange: "ifuut.events",
		},
		Admin: AdminConfig{
			SiteHeader: "IFUUT — Painel Administrativo",
			SiteTitle:  "IFUUT Administração",
			IndexTitle: "Painel de Controle Esportivo",
			SiteURL:    "/",
		},
	}
}
