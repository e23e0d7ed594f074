package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/finiteconsole/internal/logging"
	"github.com/aretw0/finiteconsole/pkg/adapters/redis"
	"github.com/aretw0/finiteconsole/pkg/console"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides: FINITE_LOG_LEVEL -> log_level.
const EnvPrefix = "FINITE_"

// Default values.
const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = logging.FormatText
	DefaultRenderer    = console.RendererPlain
	DefaultRedisStream = redis.DefaultStream
)

// Config holds the settings shared by the finite commands.
type Config struct {
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	Renderer    string `koanf:"renderer"`
	Headless    bool   `koanf:"headless"`
	Banner      bool   `koanf:"banner"`
	MetricsAddr string `koanf:"metrics_addr"`
	RedisAddr   string `koanf:"redis_addr"`
	RedisStream string `koanf:"redis_stream"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// findConfigFile returns the explicit path or the first finite.yaml / finite.yml in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"finite.yaml", "finite.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":    DefaultLogLevel,
		"log_format":   DefaultLogFormat,
		"renderer":     DefaultRenderer,
		"headless":     false,
		"banner":       true,
		"redis_stream": DefaultRedisStream,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// --debug is shorthand for --log-level=debug.
			if key == "debug" {
				if on, _ := flags.GetBool("debug"); on {
					return "log_level", "debug"
				}
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := console.RendererByName(c.Renderer); err != nil {
		return err
	}
	return nil
}
