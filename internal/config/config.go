package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Aladin  AladinConfig  `yaml:"aladin" mapstructure:"aladin"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Roadmap RoadmapConfig `yaml:"roadmap" mapstructure:"roadmap"`
	Library LibraryConfig `yaml:"library" mapstructure:"library"`
	Proxy   ProxyConfig   `yaml:"proxy" mapstructure:"proxy"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// AladinConfig holds the catalog API settings. With UseProxy set the
// client calls ProxyBaseURL/aladin/<endpoint> and sends no key.
type AladinConfig struct {
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	TTBKey       string `yaml:"ttb_key" mapstructure:"ttb_key"`
	UseProxy     bool   `yaml:"use_proxy" mapstructure:"use_proxy"`
	ProxyBaseURL string `yaml:"proxy_base_url" mapstructure:"proxy_base_url"`
	MaxResults   int    `yaml:"max_results" mapstructure:"max_results"`
}

// CacheConfig configures the response cache tiers.
type CacheConfig struct {
	Path              string  `yaml:"path" mapstructure:"path"`
	TTLHours          int     `yaml:"ttl_hours" mapstructure:"ttl_hours"`
	MemoryEntries     int     `yaml:"memory_entries" mapstructure:"memory_entries"`
	UserAgent         string  `yaml:"user_agent" mapstructure:"user_agent"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// RoadmapConfig configures the reconciliation scan limits.
type RoadmapConfig struct {
	BestsellerPages int `yaml:"bestseller_pages" mapstructure:"bestseller_pages"`
	PageSize        int `yaml:"page_size" mapstructure:"page_size"`
	ExtendedLimit   int `yaml:"extended_limit" mapstructure:"extended_limit"`
	PerStepLimit    int `yaml:"per_step_limit" mapstructure:"per_step_limit"`
}

// LibraryConfig configures the favorites/progress database.
type LibraryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ProxyConfig configures the key-hiding relay server.
type ProxyConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BOOKROAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("aladin.base_url", "http://www.aladin.co.kr/ttb/api")
	v.SetDefault("aladin.ttb_key", "")
	v.SetDefault("aladin.use_proxy", false)
	v.SetDefault("aladin.proxy_base_url", "")
	v.SetDefault("aladin.max_results", 30)
	v.SetDefault("cache.path", "bookroad-cache.db")
	v.SetDefault("cache.ttl_hours", 24)
	v.SetDefault("cache.memory_entries", 300)
	v.SetDefault("cache.user_agent", "bookroad/1.0")
	v.SetDefault("cache.requests_per_second", 5.0)
	v.SetDefault("cache.burst", 5)
	v.SetDefault("roadmap.bestseller_pages", 6)
	v.SetDefault("roadmap.page_size", 50)
	v.SetDefault("roadmap.extended_limit", 24)
	v.SetDefault("roadmap.per_step_limit", 10)
	v.SetDefault("library.path", "bookroad-library.db")
	v.SetDefault("proxy.port", 8787)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Catalog
// commands need either a key or a proxy to reach the API; the proxy
// server always needs the key, that being its whole point.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "catalog":
		if c.Aladin.UseProxy {
			if c.Aladin.ProxyBaseURL == "" {
				problems = append(problems, "aladin.proxy_base_url is required when use_proxy is set")
			}
		} else if c.Aladin.TTBKey == "" {
			problems = append(problems, "aladin.ttb_key is required (or enable use_proxy)")
		}
		if c.Aladin.MaxResults < 1 || c.Aladin.MaxResults > 100 {
			problems = append(problems, "aladin.max_results must be between 1 and 100")
		}
		if c.Cache.TTLHours < 1 {
			problems = append(problems, "cache.ttl_hours must be >= 1")
		}
		if c.Cache.MemoryEntries < 1 {
			problems = append(problems, "cache.memory_entries must be >= 1")
		}
		if c.Roadmap.BestsellerPages < 1 || c.Roadmap.PageSize < 1 {
			problems = append(problems, "roadmap.bestseller_pages and roadmap.page_size must be >= 1")
		}
	case "proxy":
		if c.Aladin.TTBKey == "" {
			problems = append(problems, "aladin.ttb_key is required")
		}
		if c.Proxy.Port <= 0 {
			problems = append(problems, "proxy.port must be > 0")
		}
	case "library":
		if c.Library.Path == "" {
			problems = append(problems, "library.path is required")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
