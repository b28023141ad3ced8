package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Jrmarques7/ISABELA-TCC/config"
	"github.com/Jrmarques7/ISABELA-TCC/log"
	"github.com/Jrmarques7/ISABELA-TCC/model"
)

// Store persists survey responses. Responses are immutable once created
// and can only be removed all at once.
type Store interface {
	Create(ctx context.Context, r model.SurveyResponse) (int64, error)
	List(ctx context.Context) ([]model.SurveyResponse, error)
	Stats(ctx context.Context) (model.Stats, error)
	DeleteAll(ctx context.Context) error
	Close() error
}

// Open connects to the configured backend and brings its schema up to date.
func Open(cfg config.Config) (Store, error) {
	dsn := cfg.DSN()
	if cfg.DBType == config.SQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, errors.Wrap(err, "db.mkdir")
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DBPath)
	}

	db, err := sql.Open(cfg.DBType, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "db.open")
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.ping")
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if err = migrateDB(db, cfg.DBType); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.migrate")
	}

	log.Debugf("database ready (%s)", cfg.DBType)
	return newSQLStore(db, cfg.DBType), nil
}
