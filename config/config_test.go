package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.DBType != SQLite {
		t.Errorf("expected sqlite3 backend, got %q", cfg.DBType)
	}
	if cfg.DSN() != "./data/pesquisa.db" {
		t.Errorf("unexpected DSN %q", cfg.DSN())
	}
	if cfg.AdminEnabled() {
		t.Error("admin guard should be disabled without a password hash")
	}
}

func TestParse_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DSN() != "postgres://test" {
		t.Errorf("expected postgres DSN, got %q", cfg.DSN())
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
}

func TestParse_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := Parse([]string{"-port", "8080", "-host", "0.0.0.0", "-db-path", "test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("flags should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Url() != "http://localhost:8080" {
		t.Errorf("unexpected url %q", cfg.Url())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"-db-type", "oracle"}},
		{"postgres without url", []string{"-db-type", "postgres"}},
		{"sqlite without path", []string{"-db-path", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func useEnvFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	old := envFile
	envFile = path
	t.Cleanup(func() { envFile = old })
}

func TestParse_EnvFile(t *testing.T) {
	// register a restore for the value godotenv is about to set
	t.Setenv("DATABASE_PATH", "")
	os.Unsetenv("DATABASE_PATH")
	useEnvFile(t, "# local settings\nDATABASE_PATH=/tmp/from-dotenv.db\n")

	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/from-dotenv.db" {
		t.Errorf("expected path from .env, got %q", cfg.DBPath)
	}
}

func TestParse_MissingEnvFile(t *testing.T) {
	old := envFile
	envFile = filepath.Join(t.TempDir(), "absent.env")
	t.Cleanup(func() { envFile = old })

	if _, err := Parse([]string{}); err != nil {
		t.Errorf("a missing .env file should be ignored, got %v", err)
	}
}

func TestParse_MalformedEnvFile(t *testing.T) {
	useEnvFile(t, "NOT-A-KEY=1\n")

	if _, err := Parse([]string{}); err == nil {
		t.Error("expected an error for a malformed .env file")
	}
}
