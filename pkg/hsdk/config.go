package hsdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hireloop/hireloop/pkg/kv"
)

// Config is the client-side configuration surface. BaseURL is the only value
// required for network use; everything else has a default.
type Config struct {
	BaseURL string `mapstructure:"baseUrl"`

	// EagerRefreshPrefixes lists path prefixes whose endpoints force a
	// refresh before every request, regardless of current token expiry.
	// The recruiter chat backend rejects near-expiry tokens.
	EagerRefreshPrefixes []string `mapstructure:"eagerRefreshPrefixes"`

	// HTTPTimeout bounds every request; a timed-out call surfaces as a
	// transport error, the session is kept.
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`

	// TokenStore selects the session backend: "keyring", "redis" or "memory".
	TokenStore string `mapstructure:"tokenStore"`

	Redis kv.RedisConfig `mapstructure:"redis"`

	v *viper.Viper // instance-specific viper
}

const (
	EnvPrefix  = "HIRELOOP"
	ConfigRoot = ".hireloop"

	BaseURLKey = "baseUrl"
)

// LoadConfig creates a new Config instance with its own viper.
// This is the only way to load config (no global state).
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		// Load project config (TRACKED) - hireloop.yaml in current directory
		for _, name := range []string{"hireloop.yaml", "hireloop.yml", ".hireloop.yaml"} {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				if err := v.ReadInConfig(); err == nil {
					break
				}
			}
		}

		// Merge local overrides (UNTRACKED) - .hireloop/config.yaml
		localConfigPath := filepath.Join(ConfigRoot, "config.yaml")
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging local config: %w", err)
			}
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.v = v

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("eagerRefreshPrefixes", []string{"/recruiter/chat"})
	v.SetDefault("httpTimeout", time.Minute)
	v.SetDefault("tokenStore", "keyring")
	v.SetDefault("redis.addr", "localhost:6379")
}

// Viper exposes the underlying viper instance so callers (the CLI) can bind
// flags onto it.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// NewStore builds the session store selected by the config.
func (c *Config) NewStore() (Store, error) {
	switch c.TokenStore {
	case "", "keyring":
		return NewKeyringStore(c.BaseURL), nil
	case "redis":
		backend, err := kv.NewRedisStore(c.Redis)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return NewKVStore(backend, c.BaseURL), nil
	case "memory":
		return NewKVStore(kv.NewMemoryStore(), c.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown tokenStore %q (want keyring, redis or memory)", c.TokenStore)
	}
}
