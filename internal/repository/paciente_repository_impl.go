package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	"hospital-sedes-backend/internal/domain/entity"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type pacienteRepository struct{}

func NewPacienteRepository() domainRepo.PacienteRepository {
	return &pacienteRepository{}
}

func (r *pacienteRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Paciente, error) {
	var rows []entity.Paciente
	err := db.Raw(catalog.For(b).SelectPacientes, b.Discriminant).Scan(&rows).Error
	if err != nil {
		return listWithFallback[entity.Paciente](db, b, catalog.BasePacienteDetalle, err)
	}
	return rows, nil
}

func (r *pacienteRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Paciente, error) {
	var rows []entity.Paciente
	err := db.Raw(catalog.For(b).SelectPacienteByID, id, b.Discriminant).Scan(&rows).Error
	if err != nil {
		// Deployments without the suffixed detail table keep patients in the
		// merged generic table; probe it before giving up.
		generic := "SELECT id_paciente, cedula, nombre, apellido, fecha_nacimiento, genero, centro_medico" +
			" FROM " + catalog.TablePaciente + " WHERE id_paciente = ? AND centro_medico = ?"
		if ferr := db.Raw(generic, id, b.Discriminant).Scan(&rows).Error; ferr != nil {
			return nil, &domainRepo.NoSuitableSourceError{Entity: catalog.BasePacienteDetalle, Sede: b.Key, Cause: err}
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *pacienteRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	return nextID(db, catalog.For(b).MaxPacienteID, partitionedIDFloor)
}

func (r *pacienteRepository) InsertInfo(db *gorm.DB, b branch.Branch, p *entity.Paciente) error {
	return db.Exec(catalog.For(b).InsertPacienteInfo,
		p.IDPaciente, p.Cedula, b.Discriminant).Error
}

func (r *pacienteRepository) InsertDetalle(db *gorm.DB, b branch.Branch, p *entity.Paciente) error {
	return db.Exec(catalog.For(b).InsertPacienteDetalle,
		p.IDPaciente, p.Nombre, p.Apellido, p.FechaNacimiento, p.Genero, b.Discriminant).Error
}

func (r *pacienteRepository) Update(db *gorm.DB, b branch.Branch, id int, p *entity.Paciente) (int64, error) {
	res := db.Exec(catalog.For(b).UpdatePaciente,
		p.Nombre, p.Apellido, p.FechaNacimiento, p.Genero, id, b.Discriminant)
	return res.RowsAffected, res.Error
}

func (r *pacienteRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	res := db.Exec(catalog.For(b).DeletePacienteDetalle, id, b.Discriminant)
	if res.Error != nil {
		return 0, res.Error
	}
	deleted := res.RowsAffected
	// The identity row goes with the detail row; both statements run inside
	// the coordinator's transaction.
	if deleted > 0 {
		if err := db.Exec(catalog.For(b).DeletePacienteInfo, id, b.Discriminant).Error; err != nil {
			return 0, err
		}
	}
	return deleted, nil
}
