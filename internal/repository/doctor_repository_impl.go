package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Doctor, error) {
	var rows []entity.Doctor
	err := db.Raw(catalog.For(b).SelectDoctores, b.Discriminant).Scan(&rows).Error
	if err != nil {
		return listWithFallback[entity.Doctor](db, b, catalog.BaseDoctor, err)
	}
	return rows, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Doctor, error) {
	var rows []entity.Doctor
	if err := db.Raw(catalog.For(b).SelectDoctorByID, id, b.Discriminant).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *doctorRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	return nextID(db, catalog.For(b).MaxDoctorID, partitionedIDFloor)
}

func (r *doctorRepository) Insert(db *gorm.DB, b branch.Branch, d *entity.Doctor) error {
	return db.Exec(catalog.For(b).InsertDoctor,
		d.IDDoctor, d.Nombre, d.Apellido, d.IDEspecialidad, b.Discriminant).Error
}

func (r *doctorRepository) Update(db *gorm.DB, b branch.Branch, id int, d *entity.Doctor) (int64, error) {
	res := db.Exec(catalog.For(b).UpdateDoctor,
		d.Nombre, d.Apellido, d.IDEspecialidad, id, b.Discriminant)
	return res.RowsAffected, res.Error
}

func (r *doctorRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	res := db.Exec(catalog.For(b).DeleteDoctor, id, b.Discriminant)
	return res.RowsAffected, res.Error
}
