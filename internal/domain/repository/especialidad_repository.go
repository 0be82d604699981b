package repository

import (
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// EspecialidadRepository reads and writes the shared especialidad table.
// The statement text is identical on every sede, so no branch parameter is
// needed; the caller picks which sede's connection carries the call.
type EspecialidadRepository interface {
	FindAll(db *gorm.DB) ([]entity.Especialidad, error)
	FindByID(db *gorm.DB, id int) (*entity.Especialidad, error)
	NextID(db *gorm.DB) (int, error)
	Insert(db *gorm.DB, e *entity.Especialidad) error
	Update(db *gorm.DB, id int, e *entity.Especialidad) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
