package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type consultorioRepository struct{}

func NewConsultorioRepository() domainRepo.ConsultorioRepository {
	return &consultorioRepository{}
}

func (r *consultorioRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Consultorio, error) {
	var rows []entity.Consultorio
	err := db.Raw(catalog.For(b).SelectConsultorios, b.Discriminant).Scan(&rows).Error
	if err != nil {
		return listWithFallback[entity.Consultorio](db, b, catalog.BaseConsultorio, err)
	}
	return rows, nil
}

func (r *consultorioRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Consultorio, error) {
	var rows []entity.Consultorio
	if err := db.Raw(catalog.For(b).SelectConsultorioByID, id, b.Discriminant).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *consultorioRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	return nextID(db, catalog.For(b).MaxConsultorioID, partitionedIDFloor)
}

func (r *consultorioRepository) Insert(db *gorm.DB, b branch.Branch, c *entity.Consultorio) error {
	return db.Exec(catalog.For(b).InsertConsultorio,
		c.IDConsultorio, c.Numero, c.Ubicacion, b.Discriminant).Error
}

func (r *consultorioRepository) Update(db *gorm.DB, b branch.Branch, id int, c *entity.Consultorio) (int64, error) {
	res := db.Exec(catalog.For(b).UpdateConsultorio,
		c.Numero, c.Ubicacion, id, b.Discriminant)
	return res.RowsAffected, res.Error
}

func (r *consultorioRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	res := db.Exec(catalog.For(b).DeleteConsultorio, id, b.Discriminant)
	return res.RowsAffected, res.Error
}
