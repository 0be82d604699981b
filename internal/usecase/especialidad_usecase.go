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

var ErrEspecialidadNotFound = errors.New("especialidad not found")

// EspecialidadUsecase serves the shared especialidad reference table. Reads
// go through the Redis cache; any sede's connection can carry the query
// because the table is replicated, so reads use the caller's sede and writes
// still target the sede the request was scoped to.
type EspecialidadUsecase interface {
	List(ctx context.Context, b branch.Branch) ([]entity.Especialidad, error)
	Get(ctx context.Context, b branch.Branch, id int) (*entity.Especialidad, error)
	Create(ctx context.Context, b branch.Branch, req *dto.CreateEspecialidadRequest) (*entity.Especialidad, error)
	Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateEspecialidadRequest) (*entity.Especialidad, error)
	Delete(ctx context.Context, b branch.Branch, id int) error
}

type especialidadUsecase struct {
	resolver         DBResolver
	log              *logrus.Logger
	cache            *service.RefdataCache
	especialidadRepo repository.EspecialidadRepository
}

func NewEspecialidadUsecase(resolver DBResolver, log *logrus.Logger, cache *service.RefdataCache, especialidadRepo repository.EspecialidadRepository) EspecialidadUsecase {
	return &especialidadUsecase{
		resolver:         resolver,
		log:              log,
		cache:            cache,
		especialidadRepo: especialidadRepo,
	}
}

func (u *especialidadUsecase) List(ctx context.Context, b branch.Branch) ([]entity.Especialidad, error) {
	var cached []entity.Especialidad
	if u.cache.GetList(ctx, service.KeyEspecialidades, &cached) {
		return cached, nil
	}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	rows, err := u.especialidadRepo.FindAll(db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list especialidades via sede %s: %+v", b.Key, err)
		return nil, err
	}

	u.cache.SetList(ctx, service.KeyEspecialidades, rows)
	return rows, nil
}

func (u *especialidadUsecase) Get(ctx context.Context, b branch.Branch, id int) (*entity.Especialidad, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	e, err := u.especialidadRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find especialidad %d via sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if e == nil {
		return nil, ErrEspecialidadNotFound
	}
	return e, nil
}

func (u *especialidadUsecase) Create(ctx context.Context, b branch.Branch, req *dto.CreateEspecialidadRequest) (*entity.Especialidad, error) {
	e := &entity.Especialidad{
		IDEspecialidad: req.IDEspecialidad,
		Nombre:         req.Nombre,
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

	if e.IDEspecialidad == 0 {
		id, err := u.especialidadRepo.NextID(tx)
		if err != nil {
			u.log.Warnf("Failed to mint especialidad id via sede %s: %+v", b.Key, err)
			return nil, err
		}
		e.IDEspecialidad = id
	}

	if err := u.especialidadRepo.Insert(tx, e); err != nil {
		u.log.Warnf("Failed to insert especialidad via sede %s: %+v", b.Key, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit especialidad insert via sede %s: %+v", b.Key, err)
		return nil, err
	}

	u.cache.Invalidate(ctx, service.KeyEspecialidades)
	return e, nil
}

func (u *especialidadUsecase) Update(ctx context.Context, b branch.Branch, id int, req *dto.UpdateEspecialidadRequest) (*entity.Especialidad, error) {
	e := &entity.Especialidad{Nombre: req.Nombre}

	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}

	rows, err := u.especialidadRepo.Update(db.WithContext(ctx), id, e)
	if err != nil {
		u.log.Warnf("Failed to update especialidad %d via sede %s: %+v", id, b.Key, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEspecialidadNotFound
	}

	u.cache.Invalidate(ctx, service.KeyEspecialidades)
	e.IDEspecialidad = id
	return e, nil
}

func (u *especialidadUsecase) Delete(ctx context.Context, b branch.Branch, id int) error {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return err
	}

	rows, err := u.especialidadRepo.Delete(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete especialidad %d via sede %s: %+v", id, b.Key, err)
		return err
	}
	if rows == 0 {
		return ErrEspecialidadNotFound
	}

	u.cache.Invalidate(ctx, service.KeyEspecialidades)
	return nil
}
