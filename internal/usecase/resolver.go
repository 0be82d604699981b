package usecase

import (
	"hospital-sedes-backend/internal/branch"

	"gorm.io/gorm"
)

// DBResolver maps a sede to its connection pool. Implemented by
// database.Resolver; usecase tests substitute fakes.
type DBResolver interface {
	Resolve(b branch.Branch) (*gorm.DB, error)
}
