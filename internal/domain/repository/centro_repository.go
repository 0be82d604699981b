package repository

import (
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// CentroRepository reads and writes the shared centros_medicos table.
type CentroRepository interface {
	FindAll(db *gorm.DB) ([]entity.CentroMedico, error)
	FindByID(db *gorm.DB, id int) (*entity.CentroMedico, error)
	NextID(db *gorm.DB) (int, error)
	Insert(db *gorm.DB, c *entity.CentroMedico) error
	Update(db *gorm.DB, id int, c *entity.CentroMedico) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
