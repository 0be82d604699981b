package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type citaRepository struct{}

func NewCitaRepository() domainRepo.CitaRepository {
	return &citaRepository{}
}

func (r *citaRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Cita, error) {
	var rows []entity.Cita
	err := db.Raw(catalog.For(b).SelectCitas, b.Discriminant).Scan(&rows).Error
	if err != nil {
		return listWithFallback[entity.Cita](db, b, catalog.BaseCita, err)
	}
	return rows, nil
}

func (r *citaRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Cita, error) {
	var rows []entity.Cita
	if err := db.Raw(catalog.For(b).SelectCitaByID, id, b.Discriminant).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *citaRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	return nextID(db, catalog.For(b).MaxCitaID, partitionedIDFloor)
}

func (r *citaRepository) Insert(db *gorm.DB, b branch.Branch, c *entity.Cita) error {
	return db.Exec(catalog.For(b).InsertCita,
		c.IDCita, c.IDConsultorio, c.IDPaciente, c.Fecha, c.Motivo, b.Discriminant).Error
}

func (r *citaRepository) Update(db *gorm.DB, b branch.Branch, id int, c *entity.Cita) (int64, error) {
	res := db.Exec(catalog.For(b).UpdateCita,
		c.IDConsultorio, c.IDPaciente, c.Fecha, c.Motivo, id, b.Discriminant)
	return res.RowsAffected, res.Error
}

func (r *citaRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	res := db.Exec(catalog.For(b).DeleteCita, id, b.Discriminant)
	return res.RowsAffected, res.Error
}
