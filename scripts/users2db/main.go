package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Users              string `long:"users" env:"USERS" default:"users.json" description:"path to identity provider users export"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

// user is a record of identity provider export.
type user struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "users2db"
	parser.LongDescription = "Identity provider users to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("users2db started")

	b, err := os.ReadFile(opts.Users)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read users")
	}

	var users []user
	if err := json.Unmarshal(b, &users); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal users")
	}

	db := sqlx.NewDb(mustGetDB(), "postgres")
	now := time.Now().UTC()

	for i, v := range users {
		if v.ID == "" {
			logrus.WithField("index", i).Warn("skip user without id")
			continue
		}

		if v.CreatedAt.IsZero() {
			v.CreatedAt = now
		}

		// name is kept when the user has already changed it in the service
		if _, err := db.NamedExecContext(context.Background(), `
			INSERT INTO users(id, name, email, created_at)
			VALUES(:id, :name, :email, :created_at)
			ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email
		`, v); err != nil {
			logrus.WithError(err).WithField("id", v.ID).Fatal("failed to put user into db")
		}

		if (i+1)%20 == 0 {
			logrus.Infof("%d of %d users imported", i+1, len(users))
		}
	}

	logrus.Info("done")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
