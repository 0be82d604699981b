package usecase

import (
	"context"
	"errors"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/converter"
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
	"hospital-sedes-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPacienteNotFound = errors.New("paciente not found")

type PacienteUsecase interface {
	List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Paciente, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Paciente, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreatePacienteRequest) (*entity.Paciente, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdatePacienteRequest) (*entity.Paciente, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type pacienteUsecase struct {
	resolver     DBResolver
	log          *logrus.Logger
	pacienteRepo repository.PacienteRepository
}

func NewPacienteUsecase(resolver DBResolver, log *logrus.Logger, pacienteRepo repository.PacienteRepository) PacienteUsecase {
	return &pacienteUsecase{
		resolver:     resolver,
		log:          log,
		pacienteRepo: pacienteRepo,
	}
}

func (u *pacienteUsecase) List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Paciente, error) {
	if todos {
		return collectAllSedes(ctx, u.log, u.resolver, "pacientes", u.fetchSede), nil
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	rows, err := u.pacienteRepo.FindAll(db.WithContext(ctx), b)
	if err != nil {
		u.log.Warnf("Failed to list pacientes for sede %s: %+v", b.Key, err)
		return nil, err
	}
	return rows, nil
}

func (u *pacienteUsecase) fetchSede(db *gorm.DB, b branch.Branch) ([]entity.Paciente, error) {
	rows, err := u.pacienteRepo.FindAll(db, b)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Sede = b.Key
	}
	return rows, nil
}

func (u *pacienteUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Paciente, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	p, err := u.pacienteRepo.FindByID(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if p == nil {
		return nil, ErrPacienteNotFound
	}
	return p, nil
}

// Create inserts the identity row and the detail row inside one transaction
// on the target sede. The detail insert references the id minted for the
// identity row, so the order is fixed; any failure rolls both back.
func (u *pacienteUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreatePacienteRequest) (*entity.Paciente, error) {
	p, err := converter.CreatePacienteToEntity(req)
	if err != nil {
		return nil, err
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if p.IDPaciente == 0 {
		id, err := u.pacienteRepo.NextID(tx, b)
		if err != nil {
			u.log.Warnf("Failed to mint paciente id on sede %s: %+v", b.Key, err)
			return nil, err
		}
		p.IDPaciente = id
	}

	if err := u.pacienteRepo.InsertInfo(tx, b, p); err != nil {
		u.log.Warnf("Failed to insert paciente_info on sede %s: %+v", b.Key, err)
		return nil, err
	}
	if err := u.pacienteRepo.InsertDetalle(tx, b, p); err != nil {
		u.log.Warnf("Failed to insert paciente_detalle on sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit paciente insert on sede %s: %+v", b.Key, err)
		return nil, err
	}

	p.CentroMedico = b.Discriminant
	return p, nil
}

func (u *pacienteUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdatePacienteRequest) (*entity.Paciente, error) {
	p, err := converter.UpdatePacienteToEntity(req)
	if err != nil {
		return nil, err
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.pacienteRepo.Update(db.WithContext(ctx), b, id, p)
	if err != nil {
		u.log.Warnf("Failed to update paciente %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPacienteNotFound
	}

	p.IDPaciente = id
	p.CentroMedico = b.Discriminant
	return p, nil
}

func (u *pacienteUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	rows, err := u.pacienteRepo.Delete(tx, b, id)
	if err != nil {
		u.log.Warnf("Failed to delete paciente %d on sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrPacienteNotFound
	}

	return tx.Commit().Error
}
