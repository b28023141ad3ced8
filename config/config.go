package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"regexp"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SQLite   = "sqlite3"
	Postgres = "postgres"
)

// envFile is the optional dotenv file read by Parse.
var envFile = ".env"

type Config struct {
	Host              string   `env:"HOST" envDefault:"0.0.0.0"`
	Port              uint     `env:"PORT" envDefault:"3000"`
	DBType            string   `env:"DATABASE_TYPE" envDefault:"sqlite3"`
	DBPath            string   `env:"DATABASE_PATH" envDefault:"./data/pesquisa.db"`
	DBUrl             string   `env:"DATABASE_URL"`
	AdminUser         string   `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string   `env:"ADMIN_PASSWORD_HASH"`
	CORSOrigins       []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LogFormat         string   `env:"LOG_FORMAT" envDefault:"text"`
	Debug             bool     `env:"DEBUG"`
}

// Parse reads an optional .env file, then the environment, then the command
// line. Flags win over the environment.
func Parse(args []string) (cfg Config, err error) {
	if err = godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", envFile, err)
	}

	if err = env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("pesquisa", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "listen host name")
	fs.UintVar(&cfg.Port, "port", cfg.Port, "listen port number")
	fs.StringVar(&cfg.DBType, "db-type", cfg.DBType, "database backend (sqlite3 or postgres)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to SQLite3 DB file")
	fs.StringVar(&cfg.DBUrl, "db-url", cfg.DBUrl, "PostgreSQL connection URL")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log at DEBUG level")
	if err = fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.DBType {
	case SQLite:
		if cfg.DBPath == "" {
			err = errors.New("missing parameter -db-path")
		}
	case Postgres:
		if cfg.DBUrl == "" {
			err = errors.New("missing parameter -db-url")
		}
	default:
		err = fmt.Errorf("unknown database type %q", cfg.DBType)
	}
	return
}

func (cfg Config) Addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
}

// DSN returns the connection string for the configured backend.
func (cfg Config) DSN() string {
	if cfg.DBType == Postgres {
		return cfg.DBUrl
	}
	return cfg.DBPath
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr()
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

// AdminEnabled reports whether destructive and report endpoints require credentials.
func (cfg Config) AdminEnabled() bool {
	return cfg.AdminPasswordHash != ""
}
