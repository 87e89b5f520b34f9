package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_CONN", "LOG_LEVEL", "BCRYPT_COST", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != "sqlite" || cfg.DBConn != "./data/finance.db" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected default shutdown timeout 15s, got %s", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_CONN", "host=localhost dbname=finance sslmode=disable")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://ledger.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "3001" || cfg.DBDriver != "postgres" || cfg.BcryptCost != 12 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://ledger.example.com" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestNewConfigBadNumber(t *testing.T) {
	t.Setenv("BCRYPT_COST", "ten")
	if _, err := NewConfig(); err == nil || !strings.Contains(err.Error(), "BCRYPT_COST") {
		t.Fatalf("expected BCRYPT_COST error, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Port:            "8080",
		DBDriver:        "sqlite",
		DBConn:          "./data/finance.db",
		BcryptCost:      10,
		ShutdownTimeout: time.Second,
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "non-numeric port", mutate: func(c *Config) { c.Port = "abc" }, errorString: "invalid PORT 'abc': must be a number"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, errorString: "invalid PORT 70000: must be between 1 and 65535"},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "mysql" }, errorString: "invalid DB_DRIVER 'mysql'"},
		{name: "missing conn", mutate: func(c *Config) { c.DBConn = "" }, errorString: "DB_CONN is required"},
		{name: "cost too low", mutate: func(c *Config) { c.BcryptCost = 1 }, errorString: "invalid BCRYPT_COST 1"},
		{name: "zero timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, errorString: "SHUTDOWN_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("expected error containing %q, got %v", tt.errorString, err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Config{Port: "x", DBDriver: "oracle", BcryptCost: 99, ShutdownTimeout: time.Second}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"PORT", "DB_DRIVER", "DB_CONN", "BCRYPT_COST"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
