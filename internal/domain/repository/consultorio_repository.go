package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultorioRepository interface {
	FindAll(db *gorm.DB, b branch.Branch) ([]entity.Consultorio, error)
	FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Consultorio, error)
	NextID(db *gorm.DB, b branch.Branch) (int, error)
	Insert(db *gorm.DB, b branch.Branch, c *entity.Consultorio) error
	Update(db *gorm.DB, b branch.Branch, id int, c *entity.Consultorio) (int64, error)
	Delete(db *gorm.DB, b branch.Branch, id int) (int64, error)
}
