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

var ErrCitaNotFound = errors.New("cita not found")

type CitaUsecase interface {
	List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Cita, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Cita, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateCitaRequest) (*entity.Cita, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateCitaRequest) (*entity.Cita, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type citaUsecase struct {
	resolver DBResolver
	log      *logrus.Logger
	citaRepo repository.CitaRepository
}

func NewCitaUsecase(resolver DBResolver, log *logrus.Logger, citaRepo repository.CitaRepository) CitaUsecase {
	return &citaUsecase{
		resolver: resolver,
		log:      log,
		citaRepo: citaRepo,
	}
}

func (u *citaUsecase) List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Cita, error) {
	if todos {
		return collectAllSedes(ctx, u.log, u.resolver, "citas", func(db *gorm.DB, b branch.Branch) ([]entity.Cita, error) {
			rows, err := u.citaRepo.FindAll(db, b)
			if err != nil {
				return nil, err
			}
			for i := range rows {
				rows[i].Sede = b.Key
			}
			return rows, nil
		}), nil
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	rows, err := u.citaRepo.FindAll(db.WithContext(ctx), b)
	if err != nil {
		u.log.Warnf("Failed to list citas for sede %s: %+v", b.Key, err)
		return nil, err
	}
	return rows, nil
}

func (u *citaUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Cita, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	c, err := u.citaRepo.FindByID(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to find cita %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCitaNotFound
	}
	return c, nil
}

// Create does not validate the referenced consultorio/paciente ids: with
// partitioned datastores the reference is meaningful within the same sede
// only, and the original system leaves it unenforced.
func (u *citaUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateCitaRequest) (*entity.Cita, error) {
	c, err := converter.CreateCitaToEntity(req)
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

	if c.IDCita == 0 {
		id, err := u.citaRepo.NextID(tx, b)
		if err != nil {
			u.log.Warnf("Failed to mint cita id on sede %s: %+v", b.Key, err)
			return nil, err
		}
		c.IDCita = id
	}

	if err := u.citaRepo.Insert(tx, b, c); err != nil {
		u.log.Warnf("Failed to insert cita on sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit cita insert on sede %s: %+v", b.Key, err)
		return nil, err
	}

	c.CentroMedico = b.Discriminant
	return c, nil
}

func (u *citaUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateCitaRequest) (*entity.Cita, error) {
	c, err := converter.UpdateCitaToEntity(req)
	if err != nil {
		return nil, err
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.citaRepo.Update(db.WithContext(ctx), b, id, c)
	if err != nil {
		u.log.Warnf("Failed to update cita %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCitaNotFound
	}

	c.IDCita = id
	c.CentroMedico = b.Discriminant
	return c, nil
}

func (u *citaUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.citaRepo.Delete(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to delete cita %d on sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrCitaNotFound
	}
	return nil
}
