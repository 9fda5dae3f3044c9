// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/viper"

	"github.com/nexuslab/nexus/internal/adapters/out/filesync"
	"github.com/nexuslab/nexus/internal/domain"
)

// Config holds the application configuration.
type Config struct {
	DataDir              string `mapstructure:"data_dir"`
	DefaultImage         string `mapstructure:"default_image"`
	DefaultResourceClass string `mapstructure:"default_resource_class"`

	State struct {
		LockTimeout       time.Duration `mapstructure:"lock_timeout"`
		LockStaleAfter    time.Duration `mapstructure:"lock_stale_after"`
		LockRetryInterval time.Duration `mapstructure:"lock_retry_interval"`
	} `mapstructure:"state"`

	Ports struct {
		Start int `mapstructure:"start"`
		End   int `mapstructure:"end"`
	} `mapstructure:"ports"`

	Runtime struct {
		Timeout         time.Duration `mapstructure:"timeout"`
		PullTimeout     time.Duration `mapstructure:"pull_timeout"`
		ContainerPrefix string        `mapstructure:"container_prefix"`
		// NetworkPerWorkspace puts each workspace on its own bridge network.
		NetworkPerWorkspace bool `mapstructure:"network_per_workspace"`
	} `mapstructure:"runtime"`

	Lifecycle struct {
		HealthCheckInterval   time.Duration `mapstructure:"health_check_interval"`
		HealthCheckTimeout    time.Duration `mapstructure:"health_check_timeout"`
		MaxHealthCheckRetries int           `mapstructure:"max_health_check_retries"`
		ShutdownTimeout       time.Duration `mapstructure:"shutdown_timeout"`
		DeleteStopTimeout     time.Duration `mapstructure:"delete_stop_timeout"`
		AutoRestart           bool          `mapstructure:"auto_restart"`
		IdleCheckInterval     time.Duration `mapstructure:"idle_check_interval"`
		DefaultIdleTimeout    time.Duration `mapstructure:"default_idle_timeout"`
		DefaultShutdown       string        `mapstructure:"default_shutdown_behavior"`
		HookTimeout           time.Duration `mapstructure:"hook_timeout"`
	} `mapstructure:"lifecycle"`

	Sync struct {
		Ignore    []string `mapstructure:"ignore"`
		TargetDir string   `mapstructure:"target_dir"`
	} `mapstructure:"sync"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// PortRange returns the configured host port range.
func (c Config) PortRange() domain.PortRange {
	return domain.PortRange{Start: c.Ports.Start, End: c.Ports.End}
}

func (c Config) validate() error {
	r := c.PortRange()
	if r.Start <= 0 || r.End > 65535 || r.Size() <= 0 {
		return fmt.Errorf("invalid port range %d-%d", r.Start, r.End)
	}
	if c.DefaultResourceClass != "" {
		switch domain.ResourceClass(c.DefaultResourceClass) {
		case domain.ResourceSmall, domain.ResourceMedium, domain.ResourceLarge, domain.ResourceXLarge:
		default:
			return fmt.Errorf("unknown resource class %q", c.DefaultResourceClass)
		}
	}
	if c.Lifecycle.DefaultIdleTimeout < 0 {
		return fmt.Errorf("invalid lifecycle.default_idle_timeout %s", c.Lifecycle.DefaultIdleTimeout)
	}
	if b := domain.ShutdownBehavior(c.Lifecycle.DefaultShutdown); b != "" && !b.IsValid() {
		return fmt.Errorf("unknown shutdown behavior %q", c.Lifecycle.DefaultShutdown)
	}
	return nil
}

// initConfig loads configuration from file.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.DataDir = resolveDataDir(cfg.DataDir)

	if err := cfg.validate(); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       resolveLogFilePath(cfg),
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}

// resolveLogFilePath returns the configured log file path or
// {data_dir}/logs/nexus.log.
func resolveLogFilePath(cfg Config) string {
	if cfg.Logging.File.Path != "" {
		return cfg.Logging.File.Path
	}
	return filepath.Join(cfg.DataDir, "logs", "nexus.log")
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("default_image", "ubuntu:22.04")
	v.SetDefault("default_resource_class", string(domain.ResourceMedium))
	v.SetDefault("state.lock_timeout", 5*time.Second)
	v.SetDefault("state.lock_stale_after", 30*time.Second)
	v.SetDefault("state.lock_retry_interval", 50*time.Millisecond)
	v.SetDefault("ports.start", domain.PortRangeDocker.Start)
	v.SetDefault("ports.end", domain.PortRangeDocker.End)
	v.SetDefault("runtime.timeout", 30*time.Second)
	v.SetDefault("runtime.pull_timeout", 120*time.Second)
	v.SetDefault("runtime.container_prefix", "nexus")
	v.SetDefault("runtime.network_per_workspace", false)
	v.SetDefault("lifecycle.health_check_interval", 5*time.Second)
	v.SetDefault("lifecycle.health_check_timeout", 30*time.Second)
	v.SetDefault("lifecycle.max_health_check_retries", 60)
	v.SetDefault("lifecycle.shutdown_timeout", 30*time.Second)
	v.SetDefault("lifecycle.delete_stop_timeout", 5*time.Second)
	v.SetDefault("lifecycle.auto_restart", false)
	v.SetDefault("lifecycle.idle_check_interval", time.Minute)
	v.SetDefault("lifecycle.default_idle_timeout", time.Duration(0))
	v.SetDefault("lifecycle.default_shutdown_behavior", string(domain.ShutdownStop))
	v.SetDefault("lifecycle.hook_timeout", 30*time.Second)
	v.SetDefault("sync.ignore", filesync.DefaultIgnorePatterns())
	v.SetDefault("sync.target_dir", filesync.DefaultTargetDir)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("NEXUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}
