package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	DefaultMaxUploadSize int64 = 5 * 1024 * 1024
	DefaultJWTTTLHours         = 24
	DefaultProfileID     uint  = 1
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // hours
	} `yaml:"jwt"`

	Storage struct {
		Type         string `yaml:"type"`           // local, s3
		BasePath     string `yaml:"base_path"`      // For local storage
		BaseURL      string `yaml:"base_url"`       // Public URL base
		Bucket       string `yaml:"bucket"`         // For S3
		Region       string `yaml:"region"`         // For S3
		AccessKey    string `yaml:"access_key"`     // For S3
		SecretKey    string `yaml:"secret_key"`     // For S3
		Endpoint     string `yaml:"endpoint"`       // R2 / MinIO
		UsePathStyle bool   `yaml:"use_path_style"` // MinIO
	} `yaml:"storage"`

	Upload struct {
		MaxSize int64 `yaml:"max_size"` // bytes
	} `yaml:"upload"`

	Profile struct {
		ID uint `yaml:"id"`
	} `yaml:"profile"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Metrics struct {
		Enabled   bool   `yaml:"enabled"`
		Namespace string `yaml:"namespace"`
	} `yaml:"metrics"`
}

var AppConfig *Config

// LoadConfig читает конфиг из файла или из окружения (если задан DATABASE_URL).
// Ошибка конфигурации фатальна: без нее сервер не стартует.
func LoadConfig() {
	var (
		cfg *Config
		err error
	)

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Loading config from %s", configPath)
		cfg, err = Load(configPath)
	} else {
		log.Println("Loading config from environment")
		cfg, err = FromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	AppConfig = cfg
}

// Load читает YAML-файл и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

// FromEnv - режим контейнера/тестов
func FromEnv() (*Config, error) {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.BasePath = os.Getenv("STORAGE_PATH")
	cfg.Storage.BaseURL = os.Getenv("PUBLIC_BASE_URL")
	cfg.Storage.Bucket = os.Getenv("S3_BUCKET")
	cfg.Storage.Region = os.Getenv("S3_REGION")
	cfg.Storage.AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("S3_ENDPOINT")

	cfg.Upload.MaxSize, _ = strconv.ParseInt(os.Getenv("UPLOAD_MAX_SIZE"), 10, 64)

	if id, err := strconv.ParseUint(os.Getenv("PROFILE_ID"), 10, 64); err == nil {
		cfg.Profile.ID = uint(id)
	}

	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.Metrics.Enabled = os.Getenv("METRICS_ENABLED") == "true"

	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.TTL <= 0 {
		c.JWT.TTL = DefaultJWTTTLHours
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Storage.Type == "local" && c.Storage.BaseURL == "" {
		c.Storage.BaseURL = "/uploads"
	}
	c.Storage.BaseURL = strings.TrimRight(c.Storage.BaseURL, "/")
	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = DefaultMaxUploadSize
	}
	if c.Profile.ID == 0 {
		c.Profile.ID = DefaultProfileID
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "portfolio"
	}
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	return nil
}

// IsDevelopment - подробные логи и детали ошибок
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
