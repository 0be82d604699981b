package repository

import (
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type centroRepository struct{}

func NewCentroRepository() domainRepo.CentroRepository {
	return &centroRepository{}
}

func (r *centroRepository) FindAll(db *gorm.DB) ([]entity.CentroMedico, error) {
	var rows []entity.CentroMedico
	err := db.Raw(sharedStatements.SelectCentros).Scan(&rows).Error
	return rows, err
}

func (r *centroRepository) FindByID(db *gorm.DB, id int) (*entity.CentroMedico, error) {
	var rows []entity.CentroMedico
	if err := db.Raw(sharedStatements.SelectCentroByID, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *centroRepository) NextID(db *gorm.DB) (int, error) {
	return nextID(db, sharedStatements.MaxCentroID, sharedIDFloor)
}

func (r *centroRepository) Insert(db *gorm.DB, c *entity.CentroMedico) error {
	return db.Exec(sharedStatements.InsertCentro,
		c.IDCentroMedico, c.Nombre, c.Direccion, c.Telefono, c.Email, c.SedeLabel).Error
}

func (r *centroRepository) Update(db *gorm.DB, id int, c *entity.CentroMedico) (int64, error) {
	res := db.Exec(sharedStatements.UpdateCentro,
		c.Nombre, c.Direccion, c.Telefono, c.Email, c.SedeLabel, id)
	return res.RowsAffected, res.Error
}

func (r *centroRepository) Delete(db *gorm.DB, id int) (int64, error) {
	res := db.Exec(sharedStatements.DeleteCentro, id)
	return res.RowsAffected, res.Error
}
