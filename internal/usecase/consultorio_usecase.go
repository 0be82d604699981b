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

var ErrConsultorioNotFound = errors.New("consultorio not found")

type ConsultorioUsecase interface {
	List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Consultorio, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Consultorio, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateConsultorioRequest) (*entity.Consultorio, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateConsultorioRequest) (*entity.Consultorio, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type consultorioUsecase struct {
	resolver        DBResolver
	log             *logrus.Logger
	consultorioRepo repository.ConsultorioRepository
}

func NewConsultorioUsecase(resolver DBResolver, log *logrus.Logger, consultorioRepo repository.ConsultorioRepository) ConsultorioUsecase {
	return &consultorioUsecase{
		resolver:        resolver,
		log:             log,
		consultorioRepo: consultorioRepo,
	}
}

func (u *consultorioUsecase) List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Consultorio, error) {
	if todos {
		return collectAllSedes(ctx, u.log, u.resolver, "consultorios", func(db *gorm.DB, b branch.Branch) ([]entity.Consultorio, error) {
			rows, err := u.consultorioRepo.FindAll(db, b)
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
	rows, err := u.consultorioRepo.FindAll(db.WithContext(ctx), b)
	if err != nil {
		u.log.Warnf("Failed to list consultorios for sede %s: %+v", b.Key, err)
		return nil, err
	}
	return rows, nil
}

func (u *consultorioUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Consultorio, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	c, err := u.consultorioRepo.FindByID(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to find consultorio %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if c == nil {
		return nil, ErrConsultorioNotFound
	}
	return c, nil
}

func (u *consultorioUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateConsultorioRequest) (*entity.Consultorio, error) {
	c := &entity.Consultorio{
		IDConsultorio: req.IDConsultorio,
		Numero:        req.Numero,
		Ubicacion:     req.Ubicacion,
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

	if c.IDConsultorio == 0 {
		id, err := u.consultorioRepo.NextID(tx, b)
		if err != nil {
			u.log.Warnf("Failed to mint consultorio id on sede %s: %+v", b.Key, err)
			return nil, err
		}
		c.IDConsultorio = id
	}

	if err := u.consultorioRepo.Insert(tx, b, c); err != nil {
		u.log.Warnf("Failed to insert consultorio on sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit consultorio insert on sede %s: %+v", b.Key, err)
		return nil, err
	}

	c.CentroMedico = b.Discriminant
	return c, nil
}

func (u *consultorioUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateConsultorioRequest) (*entity.Consultorio, error) {
	c := &entity.Consultorio{
		Numero:    req.Numero,
		Ubicacion: req.Ubicacion,
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.consultorioRepo.Update(db.WithContext(ctx), b, id, c)
	if err != nil {
		u.log.Warnf("Failed to update consultorio %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrConsultorioNotFound
	}

	c.IDConsultorio = id
	c.CentroMedico = b.Discriminant
	return c, nil
}

func (u *consultorioUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.consultorioRepo.Delete(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to delete consultorio %d on sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrConsultorioNotFound
	}
	return nil
}
