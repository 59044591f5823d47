package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverOpenSearch = "opensearch"
	DriverRedis      = "redis"
	DriverEmbedded   = "embedded"
)

// Config holds the docsearch configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Collection CollectionConfig `yaml:"collection"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // empty disables authentication
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig selects and configures the indexed store.
type DatabaseConfig struct {
	Driver           string           `yaml:"driver"` // opensearch, redis, embedded (default: opensearch)
	ReadinessTimeout int              `yaml:"readiness_timeout_sec"`
	OpenSearch       OpenSearchConfig `yaml:"opensearch"`
	Redis            RedisConfig      `yaml:"redis"`
	Embedded         EmbeddedConfig   `yaml:"embedded"`
}

// OpenSearchConfig holds OpenSearch connection settings.
type OpenSearchConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	UseTLS             *bool  `yaml:"use_tls"`              // default: true
	InsecureSkipVerify *bool  `yaml:"insecure_skip_verify"` // default: true (development only)
	RequestTimeoutSec  int    `yaml:"request_timeout_sec"`
}

// TLSEnabled reports whether the client talks HTTPS.
func (c OpenSearchConfig) TLSEnabled() bool { return c.UseTLS == nil || *c.UseTLS }

// SkipVerify reports whether server certificates are accepted unverified.
func (c OpenSearchConfig) SkipVerify() bool { return c.InsecureSkipVerify == nil || *c.InsecureSkipVerify }

// RedisConfig holds Redis (search module) connection settings.
type RedisConfig struct {
	Addrs    []string `yaml:"addrs"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
}

// EmbeddedConfig holds settings for the in-process bbolt store.
type EmbeddedConfig struct {
	Path string `yaml:"path"`
}

// CollectionConfig names the single managed collection and its index settings.
type CollectionConfig struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"` // text analyzer; "standard" disables stemming
	Shards   int    `yaml:"shards"`
	Replicas int    `yaml:"replicas"`
}

// Load reads configuration from a YAML file by environment name (local, docker, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFrom reads <dir>/<env>.yaml.
func LoadFrom(dir, env string) (Config, error) {
	return LoadFile(filepath.Join(dir, env+".yaml"))
}

// LoadFile reads, expands, defaults and validates one configuration file.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8000
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverOpenSearch
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 30
	}

	osCfg := &c.Database.OpenSearch
	if osCfg.Host == "" {
		osCfg.Host = "localhost"
	}
	if osCfg.Port == 0 {
		osCfg.Port = 9200
	}
	if osCfg.Username == "" && osCfg.Password == "" {
		osCfg.Username, osCfg.Password = "admin", "admin"
	}
	if osCfg.RequestTimeoutSec <= 0 {
		osCfg.RequestTimeoutSec = 10
	}

	if len(c.Database.Redis.Addrs) == 0 {
		c.Database.Redis.Addrs = []string{"localhost:6379"}
	}
	if c.Database.Embedded.Path == "" {
		c.Database.Embedded.Path = "docsearch.db"
	}

	if c.Collection.Name == "" {
		c.Collection.Name = "articles_index"
	}
	if c.Collection.Language == "" {
		c.Collection.Language = "russian"
	}
	if c.Collection.Shards <= 0 {
		c.Collection.Shards = 1
	}
	if c.Collection.Replicas < 0 {
		c.Collection.Replicas = 0
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	switch c.Database.Driver {
	case DriverOpenSearch:
		if c.Database.OpenSearch.Port <= 0 || c.Database.OpenSearch.Port > 65535 {
			return fmt.Errorf("database.opensearch.port must be between 1 and 65535, got %d",
				c.Database.OpenSearch.Port)
		}
	case DriverRedis:
		for _, addr := range c.Database.Redis.Addrs {
			if addr == "" {
				return fmt.Errorf("database.redis.addrs must not contain empty entries")
			}
		}
	case DriverEmbedded:
	default:
		return fmt.Errorf("database.driver must be one of %q, %q, %q, got %q",
			DriverOpenSearch, DriverRedis, DriverEmbedded, c.Database.Driver)
	}

	name := c.Collection.Name
	if strings.ToLower(name) != name || strings.ContainsAny(name, " \t\n,/\\*?\"<>|#") {
		return fmt.Errorf("collection.name must be lowercase without spaces or reserved characters, got %q", name)
	}
	switch c.Collection.Language {
	case "standard", "russian", "english":
	default:
		return fmt.Errorf("collection.language must be \"standard\", \"russian\" or \"english\", got %q",
			c.Collection.Language)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
