package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// Shared-table statements carry no sede-specific text; any catalog entry
// serves them.
var sharedStatements = catalog.For(branch.Default())

type especialidadRepository struct{}

func NewEspecialidadRepository() domainRepo.EspecialidadRepository {
	return &especialidadRepository{}
}

func (r *especialidadRepository) FindAll(db *gorm.DB) ([]entity.Especialidad, error) {
	var rows []entity.Especialidad
	err := db.Raw(sharedStatements.SelectEspecialidades).Scan(&rows).Error
	return rows, err
}

func (r *especialidadRepository) FindByID(db *gorm.DB, id int) (*entity.Especialidad, error) {
	var rows []entity.Especialidad
	if err := db.Raw(sharedStatements.SelectEspecialidadByID, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *especialidadRepository) NextID(db *gorm.DB) (int, error) {
	return nextID(db, sharedStatements.MaxEspecialidadID, sharedIDFloor)
}

func (r *especialidadRepository) Insert(db *gorm.DB, e *entity.Especialidad) error {
	return db.Exec(sharedStatements.InsertEspecialidad, e.IDEspecialidad, e.Nombre).Error
}

func (r *especialidadRepository) Update(db *gorm.DB, id int, e *entity.Especialidad) (int64, error) {
	res := db.Exec(sharedStatements.UpdateEspecialidad, e.Nombre, id)
	return res.RowsAffected, res.Error
}

func (r *especialidadRepository) Delete(db *gorm.DB, id int) (int64, error) {
	res := db.Exec(sharedStatements.DeleteEspecialidad, id)
	return res.RowsAffected, res.Error
}
