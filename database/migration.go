package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Jrmarques7/ISABELA-TCC/config"
)

//go:embed migrations
var dbMigrations embed.FS

func migrateDB(db *sql.DB, backend string) error {
	src, err := iofs.New(dbMigrations, "migrations/"+backend)
	if err != nil {
		return err
	}

	var dst migratedb.Driver
	switch backend {
	case config.SQLite:
		dst, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case config.Postgres:
		dst, err = migratepg.WithInstance(db, &migratepg.Config{})
	default:
		err = fmt.Errorf("no migrations for %q", backend)
	}
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, backend, dst)
	if err != nil {
		return err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		// db already up to date
		break
	case err != nil:
		return err
	}
	return nil
}
