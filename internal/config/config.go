package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env            string `yaml:"env"`
	LogLevel       string `yaml:"log_level"`
	HTTPAddr       string `yaml:"http_addr"`
	StorageBackend string `yaml:"storage_backend"`
	StorageKey     string `yaml:"storage_key"`
	DataFile       string `yaml:"data_file"`
	SQLitePath     string `yaml:"sqlite_path"`
	PostgresDSN    string `yaml:"postgres_dsn"`
	RedisAddr      string `yaml:"redis_addr"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db"`
	Timezone       string `yaml:"timezone"`
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration once per process and panics if it is invalid.
func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv(".env")
		c, err := New(os.Getenv("CONFIG_FILE"))
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// New builds a Config from defaults, then the optional YAML file at path,
// then environment variables.
func New(path string) (*Config, error) {
	c := defaults()
	if path != "" {
		if err := c.mergeYAML(path); err != nil {
			return nil, err
		}
	}
	c.mergeEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaults() *Config {
	return &Config{
		Env:            "development",
		LogLevel:       "info",
		HTTPAddr:       ":8088",
		StorageBackend: "file",
		StorageKey:     "fitness_app_data",
		DataFile:       "data/fitness_app_data.json",
		SQLitePath:     "data/fittracker.db",
		RedisAddr:      "localhost:6379",
		Timezone:       "UTC",
	}
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.Env = getEnv("APP_ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.StorageBackend = getEnv("STORAGE_BACKEND", c.StorageBackend)
	c.StorageKey = getEnv("STORAGE_KEY", c.StorageKey)
	c.DataFile = getEnv("DATA_FILE", c.DataFile)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.PostgresDSN = getEnv("POSTGRES_DSN", c.PostgresDSN)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.StorageBackend {
	case "file":
		if c.DataFile == "" {
			return errors.New("file storage requires DATA_FILE to be set")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("sqlite storage requires SQLITE_PATH to be set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when STORAGE_BACKEND=redis")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageKey == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves Timezone. It decides which calendar date is "today".
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDotEnv sets KEY=VALUE pairs from path without overriding variables
// that are already set.
func loadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if _, set := os.LookupEnv(k); set {
			continue
		}
		os.Setenv(k, strings.Trim(strings.TrimSpace(v), `"`))
	}
	return scanner.Err()
}
