package usecase

import (
	"context"
	"errors"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
	"hospital-sedes-backend/internal/domain/repository"
	"hospital-sedes-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrCentroNotFound = errors.New("centro medico not found")

// CentroUsecase serves the shared centros_medicos reference table, cached
// the same way as especialidades.
type CentroUsecase interface {
	List(ctx context.Context, b branch.Branch) ([]entity.CentroMedico, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.CentroMedico, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateCentroRequest) (*entity.CentroMedico, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateCentroRequest) (*entity.CentroMedico, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type centroUsecase struct {
	resolver   DBResolver
	log        *logrus.Logger
	cache      *service.RefdataCache
	centroRepo repository.CentroRepository
}

func NewCentroUsecase(resolver DBResolver, log *logrus.Logger, cache *service.RefdataCache, centroRepo repository.CentroRepository) CentroUsecase {
	return &centroUsecase{
		resolver:   resolver,
		log:        log,
		cache:      cache,
		centroRepo: centroRepo,
	}
}

func (u *centroUsecase) List(ctx context.Context, b branch.Branch) ([]entity.CentroMedico, error) {
	var cached []entity.CentroMedico
	if u.cache.GetList(ctx, service.KeyCentros, &cached) {
		return cached, nil
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	rows, err := u.centroRepo.FindAll(db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list centros via sede %s: %+v", b.Key, err)
		return nil, err
	}

	u.cache.SetList(ctx, service.KeyCentros, rows)
	return rows, nil
}

func (u *centroUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.CentroMedico, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	c, err := u.centroRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find centro %d via sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCentroNotFound
	}
	return c, nil
}

func (u *centroUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateCentroRequest) (*entity.CentroMedico, error) {
	c := &entity.CentroMedico{
		IDCentroMedico: req.IDCentroMedico,
		Nombre:         req.Nombre,
		Direccion:      req.Direccion,
		Telefono:       req.Telefono,
		Email:          req.Email,
		SedeLabel:      req.Sede,
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

	if c.IDCentroMedico == 0 {
		id, err := u.centroRepo.NextID(tx)
		if err != nil {
			u.log.Warnf("Failed to mint centro id via sede %s: %+v", b.Key, err)
			return nil, err
		}
		c.IDCentroMedico = id
	}

	if err := u.centroRepo.Insert(tx, c); err != nil {
		u.log.Warnf("Failed to insert centro via sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit centro insert via sede %s: %+v", b.Key, err)
		return nil, err
	}

	u.cache.Invalidate(ctx, service.KeyCentros)
	return c, nil
}

func (u *centroUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateCentroRequest) (*entity.CentroMedico, error) {
	c := &entity.CentroMedico{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		SedeLabel: req.Sede,
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.centroRepo.Update(db.WithContext(ctx), id, c)
	if err != nil {
		u.log.Warnf("Failed to update centro %d via sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCentroNotFound
	}

	u.cache.Invalidate(ctx, service.KeyCentros)
	c.IDCentroMedico = id
	return c, nil
}

func (u *centroUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.centroRepo.Delete(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete centro %d via sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrCentroNotFound
	}

	u.cache.Invalidate(ctx, service.KeyCentros)
	return nil
}
