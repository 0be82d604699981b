package database

import (
	"fmt"
	"sync"

	"hospital-sedes-backend/config"
	"hospital-sedes-backend/internal/branch"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionError reports a failed handshake with one sede's datastore. It
// carries the sede key and server address for diagnostics; the caller
// decides whether to retry or degrade.
type ConnectionError struct {
	Sede string
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("sede %s unreachable at %s: %v", e.Sede, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Resolver maps a sede to its connection pool. Pools are opened lazily on
// first use and reused afterwards.
type Resolver struct {
	cfg config.DBClusterConfig
	log *logrus.Logger

	mu    sync.Mutex
	pools map[string]*gorm.DB
}

func NewResolver(cfg config.DBClusterConfig, log *logrus.Logger) *Resolver {
	return &Resolver{
		cfg:   cfg,
		log:   log,
		pools: make(map[string]*gorm.DB),
	}
}

// Resolve returns the pool for the given sede, opening it if needed.
func (r *Resolver) Resolve(b branch.Branch) (*gorm.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.pools[b.Key]; ok {
		return db, nil
	}

	dbCfg, ok := r.cfg.ForSede(b.Key)
	if !ok {
		return nil, branch.ErrUnknownBranch
	}

	db, err := openSede(b, dbCfg)
	if err != nil {
		return nil, err
	}

	r.log.Infof("Connected to sede %s database at %s:%s", b.Key, dbCfg.Host, dbCfg.Port)
	r.pools[b.Key] = db
	return db, nil
}

// Close shuts every open pool down.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, db := range r.pools {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		delete(r.pools, key)
	}
}

func openSede(b branch.Branch, cfg config.DBConfig) (*gorm.DB, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, &ConnectionError{Sede: b.Key, Addr: addr, Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &ConnectionError{Sede: b.Key, Addr: addr, Err: err}
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, &ConnectionError{Sede: b.Key, Addr: addr, Err: err}
	}

	return db, nil
}
