package database

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"hospital-sedes-backend/config"
	"hospital-sedes-backend/internal/branch"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// RunMigrations applies each sede's migration set against its own server.
// The layout under dir is one subdirectory per sede key.
func RunMigrations(cfg config.DBClusterConfig, log *logrus.Logger) error {
	if cfg.MigrationsDir == "" {
		return nil
	}

	for _, b := range branch.All() {
		dbCfg, _ := cfg.ForSede(b.Key)
		src := fmt.Sprintf("file://%s", filepath.Join(cfg.MigrationsDir, b.Key))
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			url.QueryEscape(dbCfg.User), url.QueryEscape(dbCfg.Password),
			dbCfg.Host, dbCfg.Port, dbCfg.Name,
		)

		m, err := migrate.New(src, dsn)
		if err != nil {
			return fmt.Errorf("migrations for sede %s: %w", b.Key, err)
		}
		err = m.Up()
		srcErr, dbErr := m.Close()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrations for sede %s: %w", b.Key, err)
		}
		if srcErr != nil {
			return fmt.Errorf("migrations for sede %s: %w", b.Key, srcErr)
		}
		if dbErr != nil {
			return fmt.Errorf("migrations for sede %s: %w", b.Key, dbErr)
		}
		log.Infof("Migrations up to date for sede %s", b.Key)
	}
	return nil
}
