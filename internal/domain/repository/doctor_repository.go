package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB, b branch.Branch) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Doctor, error)
	NextID(db *gorm.DB, b branch.Branch) (int, error)
	Insert(db *gorm.DB, b branch.Branch, d *entity.Doctor) error
	Update(db *gorm.DB, b branch.Branch, id int, d *entity.Doctor) (int64, error)
	Delete(db *gorm.DB, b branch.Branch, id int) (int64, error)
}
