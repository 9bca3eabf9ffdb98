package db

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxOpenConns = 50
	maxIdleConns = 10
	connMaxLife  = time.Minute * 15
)

func MustMigrate(db *sql.DB, migrationDir string) {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: "battleship_sim",
	})
	if err != nil {
		panic(err)
	}

	migrate, err := migrate.NewWithDatabaseInstance(migrationDir, "battleship_sim", driver)
	if err != nil {
		panic(err)
	}

	version, dirty, err := migrate.Version()
	if err != nil && err.Error() != "no migration" {
		panic(err)
	}
	if dirty {
		panic("database is dirty")
	}
	log.Info().Uint("version", version).Msg("migration version")

	if err = migrate.Up(); err != nil {
		if err.Error() == "no change" {
			return
		}
		panic(err)
	}
	log.Info().Msg("migration successful")
}

func MustConnectToDb(psqlUrl string) *sql.DB {
	// Open may just validate its arguments without creating a connection
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	// 'SchemeFromURL' splits the migrationDir by ':', so db/migration is the URL
	MustMigrate(db, "files:db/migration")
	return db
}
