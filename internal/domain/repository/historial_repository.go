package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type HistorialRepository interface {
	FindAll(db *gorm.DB, b branch.Branch) ([]entity.Historial, error)
	FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Historial, error)
	NextID(db *gorm.DB, b branch.Branch) (int, error)
	Insert(db *gorm.DB, b branch.Branch, h *entity.Historial) error
	Update(db *gorm.DB, b branch.Branch, id int, h *entity.Historial) (int64, error)
	Delete(db *gorm.DB, b branch.Branch, id int) (int64, error)
}
