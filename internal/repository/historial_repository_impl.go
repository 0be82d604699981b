package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type historialRepository struct{}

func NewHistorialRepository() domainRepo.HistorialRepository {
	return &historialRepository{}
}

func (r *historialRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Historial, error) {
	var rows []entity.Historial
	err := db.Raw(catalog.For(b).SelectHistoriales, b.Discriminant).Scan(&rows).Error
	if err != nil {
		return listWithFallback[entity.Historial](db, b, catalog.BaseHistorial, err)
	}
	return rows, nil
}

func (r *historialRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Historial, error) {
	var rows []entity.Historial
	if err := db.Raw(catalog.For(b).SelectHistorialByID, id, b.Discriminant).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *historialRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	return nextID(db, catalog.For(b).MaxHistorialID, partitionedIDFloor)
}

func (r *historialRepository) Insert(db *gorm.DB, b branch.Branch, h *entity.Historial) error {
	return db.Exec(catalog.For(b).InsertHistorial,
		h.IDHistorial, h.IDCita, h.Observaciones, h.Diagnostico, h.Tratamiento, h.FechaRegistro, b.Discriminant).Error
}

func (r *historialRepository) Update(db *gorm.DB, b branch.Branch, id int, h *entity.Historial) (int64, error) {
	res := db.Exec(catalog.For(b).UpdateHistorial,
		h.Observaciones, h.Diagnostico, h.Tratamiento, id, b.Discriminant)
	return res.RowsAffected, res.Error
}

func (r *historialRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	res := db.Exec(catalog.For(b).DeleteHistorial, id, b.Discriminant)
	return res.RowsAffected, res.Error
}
