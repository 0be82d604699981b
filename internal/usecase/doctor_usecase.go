package usecase

import (
	"context"
	"errors"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
	"hospital-sedes-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Doctor, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Doctor, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type doctorUsecase struct {
	resolver   DBResolver
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(resolver DBResolver, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		resolver:   resolver,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Doctor, error) {
	if todos {
		return collectAllSedes(ctx, u.log, u.resolver, "doctores", func(db *gorm.DB, b branch.Branch) ([]entity.Doctor, error) {
			rows, err := u.doctorRepo.FindAll(db, b)
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
	rows, err := u.doctorRepo.FindAll(db.WithContext(ctx), b)
	if err != nil {
		u.log.Warnf("Failed to list doctores for sede %s: %+v", b.Key, err)
		return nil, err
	}
	return rows, nil
}

func (u *doctorUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Doctor, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	d, err := u.doctorRepo.FindByID(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if d == nil {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

func (u *doctorUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	d := &entity.Doctor{
		IDDoctor:       req.IDDoctor,
		Nombre:         req.Nombre,
		Apellido:       req.Apellido,
		IDEspecialidad: req.IDEspecialidad,
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

	if d.IDDoctor == 0 {
		id, err := u.doctorRepo.NextID(tx, b)
		if err != nil {
			u.log.Warnf("Failed to mint doctor id on sede %s: %+v", b.Key, err)
			return nil, err
		}
		d.IDDoctor = id
	}

	if err := u.doctorRepo.Insert(tx, b, d); err != nil {
		u.log.Warnf("Failed to insert doctor on sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor insert on sede %s: %+v", b.Key, err)
		return nil, err
	}

	d.CentroMedico = b.Discriminant
	return d, nil
}

func (u *doctorUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	d := &entity.Doctor{
		Nombre:         req.Nombre,
		Apellido:       req.Apellido,
		IDEspecialidad: req.IDEspecialidad,
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.doctorRepo.Update(db.WithContext(ctx), b, id, d)
	if err != nil {
		u.log.Warnf("Failed to update doctor %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrDoctorNotFound
	}

	d.IDDoctor = id
	d.CentroMedico = b.Discriminant
	return d, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.doctorRepo.Delete(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d on sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
