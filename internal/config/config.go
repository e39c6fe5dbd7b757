package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	AuthGate struct {
		// Path prefixes that require an authenticated session.
		ProtectedPrefixes []string `yaml:"protected_prefixes"`
		LoginPath         string   `yaml:"login_path"`
		// Behavior when the gate itself fails (issuer misconfigured):
		// "allow" lets the request through, "deny" redirects to login.
		OnError string `yaml:"on_error"`
	} `yaml:"auth_gate"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`

	Platform struct {
		// Base URL of the external Tappy platform integration.
		BaseURL string `yaml:"base_url"`
	} `yaml:"platform"`
}

var AppConfig *Config

// LoadConfig reads configuration from config.yaml, or entirely from
// environment variables when DATABASE_URL is set (container/test mode).
// A .env file is honored if present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = getenv("SERVER_ENV", "production")
	cfg.Server.Port, _ = strconv.Atoi(getenv("SERVER_PORT", "4000"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(getenv("JWT_TTL", "1440"))
	cfg.AuthGate.OnError = getenv("AUTH_GATE_ON_ERROR", "allow")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Admin.Name = os.Getenv("ADMIN_NAME")
	cfg.Platform.BaseURL = os.Getenv("TAPPY_PLATFORM_URL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if len(cfg.AuthGate.ProtectedPrefixes) == 0 {
		cfg.AuthGate.ProtectedPrefixes = []string{"/dashboard", "/assinante"}
	}
	if cfg.AuthGate.LoginPath == "" {
		cfg.AuthGate.LoginPath = "/login"
	}
	if cfg.AuthGate.OnError == "" {
		cfg.AuthGate.OnError = "allow"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 1440
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
