package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CitaRepository interface {
	FindAll(db *gorm.DB, b branch.Branch) ([]entity.Cita, error)
	FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Cita, error)
	NextID(db *gorm.DB, b branch.Branch) (int, error)
	Insert(db *gorm.DB, b branch.Branch, c *entity.Cita) error
	Update(db *gorm.DB, b branch.Branch, id int, c *entity.Cita) (int64, error)
	Delete(db *gorm.DB, b branch.Branch, id int) (int64, error)
}
