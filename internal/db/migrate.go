// Package db ejecuta las migraciones embebidas del esquema PostgreSQL.
package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/jhoicas/correduria-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica las migraciones pendientes sobre la base de datos.
// Si la base quedó en estado dirty por una corrida interrumpida, fuerza la
// versión registrada antes de reintentar.
func RunMigrations(databaseURL string, log *logger.Logger) error {
	dbConn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("abrir base de datos: %w", err)
	}
	defer dbConn.Close()

	driver, err := postgres.WithInstance(dbConn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("crear driver postgres: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("leer migraciones embebidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("crear instancia de migrate: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("leer versión de migración: %w", err)
	}
	if dirty {
		log.Warn().Uint("version", version).Msg("base en estado dirty, forzando versión registrada")
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("forzar versión de migración: %w", err)
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	newVersion, _, _ := m.Version()
	log.Info().Uint("version", newVersion).Msg("migraciones aplicadas")
	return nil
}
