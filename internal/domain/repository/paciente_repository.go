package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// PacienteRepository executes the paciente statement set against one sede's
// connection. The two insert statements are separate on purpose: the write
// coordinator runs them inside a single transaction, identity row first.
type PacienteRepository interface {
	FindAll(db *gorm.DB, b branch.Branch) ([]entity.Paciente, error)
	FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Paciente, error)
	NextID(db *gorm.DB, b branch.Branch) (int, error)
	InsertInfo(db *gorm.DB, b branch.Branch, p *entity.Paciente) error
	InsertDetalle(db *gorm.DB, b branch.Branch, p *entity.Paciente) error
	Update(db *gorm.DB, b branch.Branch, id int, p *entity.Paciente) (int64, error)
	Delete(db *gorm.DB, b branch.Branch, id int) (int64, error)
}
