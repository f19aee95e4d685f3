package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Conversational Language Understanding
	NLU NLUConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// NLUConfig points at one deployed CLU project. Endpoint and APIKey are
// validated when the client is built, not here, so the shells can start
// and report the misconfiguration per query.
type NLUConfig struct {
	Endpoint       string
	APIKey         string
	ProjectName    string
	DeploymentName string
	Language       string
	APIVersion     string
	Timeout        time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded into the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// NLU
	cfg.NLU.Endpoint = v.GetString("nlu.endpoint")
	cfg.NLU.APIKey = v.GetString("nlu.api_key")
	if endpoint := v.GetString("ls_conversations_endpoint"); endpoint != "" {
		cfg.NLU.Endpoint = endpoint
	}
	if key := v.GetString("ls_conversations_key"); key != "" {
		cfg.NLU.APIKey = key
	}
	cfg.NLU.ProjectName = v.GetString("nlu.project_name")
	cfg.NLU.DeploymentName = v.GetString("nlu.deployment_name")
	cfg.NLU.Language = v.GetString("nlu.language")
	cfg.NLU.APIVersion = v.GetString("nlu.api_version")
	cfg.NLU.Timeout = v.GetDuration("nlu.timeout")
	if cfg.NLU.Timeout <= 0 {
		return nil, fmt.Errorf("nlu.timeout must be positive, got %q", v.GetString("nlu.timeout"))
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 30)

	// NLU defaults
	v.SetDefault("nlu.project_name", "PedidosRapidisimos")
	v.SetDefault("nlu.deployment_name", "prueba2")
	v.SetDefault("nlu.language", "es")
	v.SetDefault("nlu.api_version", "2023-04-01")
	v.SetDefault("nlu.timeout", "30s")
}

// splitList flattens comma separated entries, since env values arrive as one string.
func splitList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
