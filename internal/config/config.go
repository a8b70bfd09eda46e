package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultWorkers         = 1
	DefaultPoolSize        = 100
	DefaultDigestSchedule  = "@hourly"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Notifier NotifierConfig `yaml:"notifier"`
	Digest   DigestConfig   `yaml:"digest"`
	Seed     SeedConfig     `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// NotifierConfig sizes the event pool. A single worker keeps websocket
// messages in mutation order.
type NotifierConfig struct {
	Workers  int `yaml:"workers"`
	PoolSize int `yaml:"poolSize"`
}

// DigestConfig schedules the progress log line. Empty disables it.
type DigestConfig struct {
	Schedule string `yaml:"schedule"`
}

type SeedConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func New() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Notifier: NotifierConfig{
			Workers:  DefaultWorkers,
			PoolSize: DefaultPoolSize,
		},
		Digest: DigestConfig{Schedule: DefaultDigestSchedule},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load applies the YAML file at path (if any) and then environment
// overrides on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("TASKLIST_ADDR"); addr != "" {
		cfg.HTTP.Addr = addr
	}
	if level := os.Getenv("TASKLIST_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("TASKLIST_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if p := os.Getenv("TASKLIST_SEED_PATH"); p != "" {
		cfg.Seed.Path = p
	}
	if sched, ok := os.LookupEnv("TASKLIST_DIGEST_SCHEDULE"); ok {
		cfg.Digest.Schedule = sched
	}
	if workers := os.Getenv("TASKLIST_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return Config{}, fmt.Errorf("%w: TASKLIST_WORKERS=%q", ErrInvalid, workers)
		}
		cfg.Notifier.Workers = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: empty http.addr", ErrInvalid)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: http.shutdownTimeout must be positive", ErrInvalid)
	}
	if c.Notifier.Workers <= 0 {
		return fmt.Errorf("%w: notifier.workers must be positive", ErrInvalid)
	}
	if c.Notifier.PoolSize <= 0 {
		return fmt.Errorf("%w: notifier.poolSize must be positive", ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}

// NewLogger builds the process logger described by l.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
