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

var ErrHistorialNotFound = errors.New("historial not found")

type HistorialUsecase interface {
	List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Historial, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Historial, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateHistorialRequest) (*entity.Historial, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateHistorialRequest) (*entity.Historial, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type historialUsecase struct {
	resolver      DBResolver
	log           *logrus.Logger
	historialRepo repository.HistorialRepository
}

func NewHistorialUsecase(resolver DBResolver, log *logrus.Logger, historialRepo repository.HistorialRepository) HistorialUsecase {
	return &historialUsecase{
		resolver:      resolver,
		log:           log,
		historialRepo: historialRepo,
	}
}

func (u *historialUsecase) List(ctx context.Context, b branch.Branch, todos bool) ([]entity.Historial, error) {
	if todos {
		return collectAllSedes(ctx, u.log, u.resolver, "historiales", func(db *gorm.DB, b branch.Branch) ([]entity.Historial, error) {
			rows, err := u.historialRepo.FindAll(db, b)
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
	rows, err := u.historialRepo.FindAll(db.WithContext(ctx), b)
	if err != nil {
		u.log.Warnf("Failed to list historiales for sede %s: %+v", b.Key, err)
		return nil, err
	}
	return rows, nil
}

func (u *historialUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Historial, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	h, err := u.historialRepo.FindByID(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to find historial %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if h == nil {
		return nil, ErrHistorialNotFound
	}
	return h, nil
}

func (u *historialUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateHistorialRequest) (*entity.Historial, error) {
	h, err := converter.CreateHistorialToEntity(req)
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

	if h.IDHistorial == 0 {
		id, err := u.historialRepo.NextID(tx, b)
		if err != nil {
			u.log.Warnf("Failed to mint historial id on sede %s: %+v", b.Key, err)
			return nil, err
		}
		h.IDHistorial = id
	}

	if err := u.historialRepo.Insert(tx, b, h); err != nil {
		u.log.Warnf("Failed to insert historial on sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit historial insert on sede %s: %+v", b.Key, err)
		return nil, err
	}

	h.CentroMedico = b.Discriminant
	return h, nil
}

func (u *historialUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateHistorialRequest) (*entity.Historial, error) {
	h := converter.UpdateHistorialToEntity(req)

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.historialRepo.Update(db.WithContext(ctx), b, id, h)
	if err != nil {
		u.log.Warnf("Failed to update historial %d on sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrHistorialNotFound
	}

	h.IDHistorial = id
	h.CentroMedico = b.Discriminant
	return h, nil
}

func (u *historialUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.historialRepo.Delete(db.WithContext(ctx), b, id)
	if err != nil {
		u.log.Warnf("Failed to delete historial %d on sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrHistorialNotFound
	}
	return nil
}
